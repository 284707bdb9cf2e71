package auth

import (
	"net/http"

	"ecoport-backend/internal/models"
	"ecoport-backend/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles admin session endpoints.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new auth handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// Login exchanges the admin credential pair for a bearer token.
func (h *Handler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	}

	resp, err := h.svc.Login(req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, resp)
}

// Me returns the authenticated admin identity.
func (h *Handler) Me(c echo.Context) error {
	actor, err := utils.ExtractActor(c)
	if err != nil {
		return err
	}
	return utils.RespondWithJSON(c, http.StatusOK, models.AdminUser{Username: actor, Role: "admin"})
}
