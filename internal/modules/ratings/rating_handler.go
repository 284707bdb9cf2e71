package ratings

import (
	"net/http"

	"ecoport-backend/internal/models"
	"ecoport-backend/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for ratings. Both endpoints are public;
// rating a pickup is a customer action, not an admin one.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new rating handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// CreateRating records feedback for a completed pickup.
func (h *Handler) CreateRating(c echo.Context) error {
	var req models.CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	rating, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, rating)
}

// GetRating returns the rating for a pickup, keyed by pickup id.
func (h *Handler) GetRating(c echo.Context) error {
	rating, err := h.svc.GetByPickupID(c.Request().Context(), c.Param("pickupId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, rating)
}
