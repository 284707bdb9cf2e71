package pickups

import (
	"net/http"

	"ecoport-backend/internal/models"
	"ecoport-backend/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for pickup requests.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new pickup handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// CreatePickup handles the public creation endpoint.
func (h *Handler) CreatePickup(c echo.Context) error {
	var req models.CreatePickupRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	pickup, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, pickup)
}

// ListPickups returns pickups newest first with optional ?status= filter
// and limit/skip pagination.
func (h *Handler) ListPickups(c echo.Context) error {
	var status *models.PickupStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := models.PickupStatus(raw)
		if !s.Valid() {
			return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown status filter")
		}
		status = &s
	}

	limit, offset := utils.GetLimitOffset(c)
	pickups, err := h.svc.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	if pickups == nil {
		pickups = []*models.PickupRequest{}
	}
	return utils.RespondWithJSON(c, http.StatusOK, pickups)
}

// GetPickup returns a single pickup by id.
func (h *Handler) GetPickup(c echo.Context) error {
	pickup, err := h.svc.Get(c.Request().Context(), c.Param("requestId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, pickup)
}

// UpdatePickup applies an admin patch (status transition, actual cost,
// notes, payment status).
func (h *Handler) UpdatePickup(c echo.Context) error {
	actor, err := utils.ExtractActor(c)
	if err != nil {
		return err
	}

	var req models.UpdatePickupRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	pickup, err := h.svc.Update(c.Request().Context(), c.Param("requestId"), req, actor)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, pickup)
}

// AssignDriver dispatches a driver to an approved pickup.
func (h *Handler) AssignDriver(c echo.Context) error {
	actor, err := utils.ExtractActor(c)
	if err != nil {
		return err
	}

	driverID := c.QueryParam("driver_id")
	if driverID == "" {
		var body struct {
			DriverID string `json:"driver_id"`
		}
		if err := c.Bind(&body); err == nil {
			driverID = body.DriverID
		}
	}
	if driverID == "" {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "driver_id is required")
	}

	pickup, err := h.svc.AssignDriver(c.Request().Context(), c.Param("requestId"), driverID, actor)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, pickup)
}

// GetStats returns counts of pickups per lifecycle status.
func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, stats)
}
