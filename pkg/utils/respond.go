package utils

import (
	"errors"
	"net/http"
	"strconv"

	"ecoport-backend/internal/models"

	"github.com/labstack/echo/v4"
)

// RespondWithJSON writes a JSON payload with the given status code.
func RespondWithJSON(c echo.Context, code int, payload interface{}) error {
	return c.JSON(code, payload)
}

// RespondWithError writes a structured error body.
func RespondWithError(c echo.Context, code int, kind, message string) error {
	return c.JSON(code, models.ErrorResponse{Kind: kind, Message: message})
}

// HandleServiceError maps the service error taxonomy onto HTTP responses.
// Every sentinel gets a stable machine-checkable kind; anything unrecognized
// is a 500 so nothing is silently swallowed.
func HandleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return RespondWithError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, models.ErrValidation):
		return RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, models.ErrOutOfServiceArea):
		return RespondWithError(c, http.StatusBadRequest, "OUT_OF_SERVICE_AREA", err.Error())
	case errors.Is(err, models.ErrInvalidTransition):
		return RespondWithError(c, http.StatusBadRequest, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, models.ErrInvalidState):
		return RespondWithError(c, http.StatusBadRequest, "INVALID_STATE", err.Error())
	case errors.Is(err, models.ErrDriverUnavailable):
		return RespondWithError(c, http.StatusBadRequest, "DRIVER_UNAVAILABLE", err.Error())
	case errors.Is(err, models.ErrConflict):
		return RespondWithError(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		return RespondWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, models.ErrUnavailable):
		return RespondWithError(c, http.StatusServiceUnavailable, "UNAVAILABLE", err.Error())
	default:
		c.Logger().Errorf("unhandled service error: %v", err)
		return RespondWithError(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

// GetLimitOffset reads ?limit= and ?skip= query parameters, defaulting the
// limit to 50 and capping it at 100.
func GetLimitOffset(c echo.Context) (limit, offset int) {
	limit = 50
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 100 {
		limit = 100
	}
	if raw := c.QueryParam("skip"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// ExtractActor returns the admin username placed into the context by the
// auth middleware. Missing means the route was wired without the middleware.
func ExtractActor(c echo.Context) (string, error) {
	actor, ok := c.Get("adminUsername").(string)
	if !ok || actor == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, models.ErrorResponse{Kind: "UNAUTHORIZED", Message: "missing admin identity"})
	}
	return actor, nil
}
