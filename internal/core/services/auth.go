// internal/core/services/auth.go
package services

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/core/ports"
)

// Demo credentials accepted by the placeholder login
const (
	DemoUsername = "admin"
	DemoPassword = "password123"
	DemoToken    = "mock_token_123"
)

// AuthService is a placeholder login that accepts a single demo account
// and hands out a static token. It does not protect any route.
type AuthService struct {
	username string
	password string
	token    string
	logger   *slog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService creates the demo auth service
func NewAuthService(logger *slog.Logger) *AuthService {
	return &AuthService{
		username: DemoUsername,
		password: DemoPassword,
		token:    DemoToken,
		logger:   logger.With(slog.String("service", "auth")),
	}
}

// Login returns the demo token when the credentials match
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1

	if !userOK || !passOK {
		s.logger.WarnContext(ctx, "login rejected", slog.String("username", username))
		return "", domain.ErrInvalidCredentials
	}

	s.logger.InfoContext(ctx, "login succeeded", slog.String("username", username))
	return s.token, nil
}
