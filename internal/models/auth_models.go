package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are the JWT claims carried by the admin bearer token.
type AdminClaims struct {
	Username string `json:"sub_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the admin credential pair.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AdminUser identifies the authenticated operator.
type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
