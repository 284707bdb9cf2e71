// Package auth issues and describes the admin session token. The rest of
// the application never sees credentials or tokens, only the actor string
// the middleware extracts.
package auth

import (
	"fmt"
	"time"

	"ecoport-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface defines the admin authentication operations.
type ServiceInterface interface {
	Login(req models.LoginRequest) (*models.LoginResponse, error)
}

// Service validates the fixed admin credential pair and signs tokens.
type Service struct {
	adminUsername     string
	adminPasswordHash string
	jwtSecret         string
	tokenTTL          time.Duration
}

// NewService creates the auth service from injected config values.
func NewService(adminUsername, adminPasswordHash, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
		tokenTTL:          tokenTTL,
	}
}

// Login exchanges the credential pair for a signed, time-limited bearer
// token. Wrong username and wrong password are indistinguishable to the
// caller.
func (s *Service) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Username != s.adminUsername {
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	now := time.Now()
	claims := models.AdminClaims{
		Username: req.Username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("service.Login: sign token: %w", err)
	}

	return &models.LoginResponse{AccessToken: signed, TokenType: "bearer"}, nil
}
