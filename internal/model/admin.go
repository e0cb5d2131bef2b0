package model

import "time"

// AdminLoginRequest represents an admin token request.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// TokenResponse represents an issued admin token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
