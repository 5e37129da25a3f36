// internal/handlers/auth.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/core/ports"
	"github.com/ammerola/resell-phones/internal/pkg/metrics"
)

// AuthHandler handles the demo login endpoint
type AuthHandler struct {
	responder
	service ports.AuthService
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service ports.AuthService, m *metrics.Metrics, logger *slog.Logger) *AuthHandler {
	logger = logger.With(slog.String("handler", "auth"))

	return &AuthHandler{
		responder: responder{logger: logger},
		service:   service,
		metrics:   m,
		logger:    logger,
	}
}

// RegisterRoutes registers the login route on mux
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/login", h.Login)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Login(ctx, req.Username, req.Password)
	h.metrics.RecordLogin(err)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		h.logger.ErrorContext(ctx, "login failed",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}
