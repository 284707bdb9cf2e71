package middleware

import (
	"errors"
	"net/http"

	"ecoport-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// AdminAuth configures and returns Echo's JWT middleware for admin routes.
// The token is verified once here; downstream handlers only see the actor
// string placed into the context.
func AdminAuth(jwtSecretKey string) echo.MiddlewareFunc {
	config := echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(models.AdminClaims)
		},
		SigningKey: []byte(jwtSecretKey),

		// SuccessHandler extracts the verified claims and exposes the
		// admin identity as the actor for audit entries.
		SuccessHandler: func(c echo.Context) {
			token := c.Get("user").(*jwt.Token)
			claims := token.Claims.(*models.AdminClaims)
			c.Set("adminUsername", claims.Username)
			c.Set("adminRole", claims.Role)
		},

		ErrorHandler: func(c echo.Context, err error) error {
			c.Logger().Errorf("JWT error: %v", err)

			if errors.Is(err, echojwt.ErrJWTMissing) {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Kind: "UNAUTHORIZED", Message: "Missing or malformed token"})
			}
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Kind: "UNAUTHORIZED", Message: "Token has expired"})
			}
			if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Kind: "UNAUTHORIZED", Message: "Invalid token signature"})
			}
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Kind: "UNAUTHORIZED", Message: "Invalid or expired token"})
		},
	}
	return echojwt.WithConfig(config)
}

// AdminRequired rejects tokens whose claims do not carry the admin role.
func AdminRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("adminRole").(string)
			if role != "admin" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Kind: "UNAUTHORIZED", Message: "Admin privileges required"})
			}
			return next(c)
		}
	}
}
