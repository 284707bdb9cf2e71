package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecoport-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret, role string, expiresAt time.Time) string {
	t.Helper()
	claims := models.AdminClaims{
		Username: "admin",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// protectedApp wires a single guarded route the way the router does and
// reports whether the handler behind the guard ever ran.
func protectedApp(handlerRan *bool) *echo.Echo {
	e := echo.New()
	g := e.Group("/api", AdminAuth(testSecret), AdminRequired())
	g.GET("/pickup-requests", func(c echo.Context) error {
		*handlerRan = true
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestAdminAuthRejectsUnauthenticatedCallers(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
		{"expired token", ""},
		{"wrong signing key", ""},
		{"non-admin role", ""},
	}
	cases[2].token = signToken(t, testSecret, "admin", time.Now().Add(-time.Hour))
	cases[3].token = signToken(t, "some-other-secret", "admin", time.Now().Add(time.Hour))
	cases[4].token = signToken(t, testSecret, "viewer", time.Now().Add(time.Hour))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handlerRan := false
			e := protectedApp(&handlerRan)

			req := httptest.NewRequest(http.MethodGet, "/api/pickup-requests", nil)
			if tc.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Kind != "UNAUTHORIZED" {
				t.Fatalf("expected kind UNAUTHORIZED, got %s", resp.Kind)
			}
			if handlerRan {
				t.Fatal("protected handler must not run for a rejected caller")
			}
		})
	}
}

func TestAdminAuthAcceptsAdminToken(t *testing.T) {
	handlerRan := false
	e := protectedApp(&handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/api/pickup-requests", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, testSecret, "admin", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !handlerRan {
		t.Fatal("protected handler should run for a valid admin token")
	}
}

func TestAdminAuthExposesActorToHandlers(t *testing.T) {
	var actor, role string
	e := echo.New()
	g := e.Group("/api", AdminAuth(testSecret), AdminRequired())
	g.GET("/whoami", func(c echo.Context) error {
		actor, _ = c.Get("adminUsername").(string)
		role, _ = c.Get("adminRole").(string)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, testSecret, "admin", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if actor != "admin" || role != "admin" {
		t.Fatalf("expected actor admin/admin, got %q/%q", actor, role)
	}
}
