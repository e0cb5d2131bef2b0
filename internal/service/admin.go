package service

import (
	"context"
	"errors"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid admin password")
	ErrPasswordRequired   = errors.New("password is required")
)

// AdminService issues admin tokens in exchange for the admin password.
type AdminService struct {
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
}

// NewAdminService creates a new AdminService. passwordHash is an argon2id PHC string.
func NewAdminService(passwordHash, secret string, expiry time.Duration) *AdminService {
	return &AdminService{
		passwordHash: passwordHash,
		jwtSecret:    secret,
		jwtExpiry:    expiry,
	}
}

// Login verifies the admin password and returns a signed token.
func (s *AdminService) Login(_ context.Context, req model.AdminLoginRequest) (model.TokenResponse, error) {
	if req.Password == "" {
		return model.TokenResponse{}, ErrPasswordRequired
	}

	match, err := crypto.VerifyPassword(req.Password, s.passwordHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, expiresAt, err := crypto.GenerateToken(crypto.RoleAdmin, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
