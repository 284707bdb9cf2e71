package drivers

import (
	"net/http"

	"ecoport-backend/internal/models"
	"ecoport-backend/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the driver registry.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new driver handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// CreateDriver registers a new driver (admin only).
func (h *Handler) CreateDriver(c echo.Context) error {
	if _, err := utils.ExtractActor(c); err != nil {
		return err
	}

	var req models.CreateDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	driver, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, driver)
}

// ListDrivers returns all drivers with an optional ?status= filter.
func (h *Handler) ListDrivers(c echo.Context) error {
	var status *models.DriverStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := models.DriverStatus(raw)
		if !s.Valid() {
			return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown status filter")
		}
		status = &s
	}

	out, err := h.svc.List(c.Request().Context(), status)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	if out == nil {
		out = []*models.Driver{}
	}
	return utils.RespondWithJSON(c, http.StatusOK, out)
}

// GetDriver returns a single driver by id.
func (h *Handler) GetDriver(c echo.Context) error {
	driver, err := h.svc.Get(c.Request().Context(), c.Param("driverId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, driver)
}

// UpdateDriverStatus sets a driver's availability (admin only).
func (h *Handler) UpdateDriverStatus(c echo.Context) error {
	actor, err := utils.ExtractActor(c)
	if err != nil {
		return err
	}

	var req models.UpdateDriverStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	driver, err := h.svc.SetStatus(c.Request().Context(), c.Param("driverId"), req.Status, actor)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, driver)
}
