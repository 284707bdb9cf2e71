package pricing

import (
	"net/http"

	"ecoport-backend/internal/models"
	"ecoport-backend/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler serves the public cost-preview endpoint. Nothing is persisted.
type Handler struct {
	engine *Engine
}

// NewHandler creates a pricing handler.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

// PreviewCost quotes a pickup without creating one. Out-of-area locations
// get in_service_area=false and no cost rather than an error.
func (h *Handler) PreviewCost(c echo.Context) error {
	var req models.CostPreviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	quote := h.engine.Quote(req.Latitude, req.Longitude, req.Quantity, req.WasteType)
	if !quote.InServiceArea {
		return utils.RespondWithJSON(c, http.StatusOK, models.CostPreviewResponse{
			InServiceArea: false,
			Message:       "Currently we serve city limits only.",
		})
	}

	return utils.RespondWithJSON(c, http.StatusOK, models.CostPreviewResponse{
		InServiceArea: true,
		DistanceKM:    &quote.DistanceKM,
		EstimatedCost: &quote.EstimatedCost,
	})
}
