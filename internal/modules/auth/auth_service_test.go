package auth

import (
	"errors"
	"testing"
	"time"

	"ecoport-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return NewService("admin", string(hash), testSecret, 24*time.Hour)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(models.LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %s", resp.TokenType)
	}

	claims := &models.AdminClaims{}
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Fatalf("bad claims: %+v", claims)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Fatalf("expected ~24h expiry, got %v", ttl)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	cases := []models.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "admin123"},
		{Username: "", Password: ""},
	}
	for _, req := range cases {
		_, err := svc.Login(req)
		if !errors.Is(err, models.ErrUnauthorized) {
			t.Fatalf("%q/%q: expected ErrUnauthorized, got %v", req.Username, req.Password, err)
		}
	}
}

func TestExpiredTokenFailsVerification(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	svc := NewService("admin", string(hash), testSecret, -time.Hour)

	resp, err := svc.Login(models.LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err = jwt.ParseWithClaims(resp.AccessToken, &models.AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
