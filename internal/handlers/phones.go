// internal/handlers/phones.go
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/core/ports"
	"github.com/ammerola/resell-phones/internal/pkg/metrics"
)

// PhoneHandler handles phone inventory HTTP requests
type PhoneHandler struct {
	responder
	service ports.PhoneService
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewPhoneHandler creates a new phone handler. m may be nil.
func NewPhoneHandler(service ports.PhoneService, m *metrics.Metrics, logger *slog.Logger) *PhoneHandler {
	logger = logger.With(slog.String("handler", "phones"))

	return &PhoneHandler{
		responder: responder{logger: logger},
		service:   service,
		metrics:   m,
		logger:    logger,
	}
}

// RegisterRoutes registers the phone and platform routes on mux
func (h *PhoneHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/phones", h.ListPhones)
	mux.HandleFunc("POST /api/phones", h.AddPhone)
	mux.HandleFunc("GET /api/phones/{id}", h.GetPhone)
	mux.HandleFunc("PUT /api/phones/{id}", h.UpdatePhone)
	mux.HandleFunc("GET /api/platforms", h.ListPlatforms)
}

// ListPhones handles GET /api/phones
func (h *PhoneHandler) ListPhones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := h.service.ListPhones(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list phones",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list phones")
		return
	}

	h.metrics.RecordListing(views)

	h.respondJSON(w, http.StatusOK, views)
}

// GetPhone handles GET /api/phones/{id}
func (h *PhoneHandler) GetPhone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	view, err := h.service.GetPhone(ctx, id)
	if err != nil {
		h.handleServiceError(ctx, w, err, "failed to get phone", id)
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// AddPhone handles POST /api/phones
func (h *PhoneHandler) AddPhone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddPhoneRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.metrics.RecordMutation("add", err)
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.AddPhone(ctx, input)
	h.metrics.RecordMutation("add", err)
	if err != nil {
		h.handleServiceError(ctx, w, err, "failed to add phone", "")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{
		"message":  "Phone added successfully",
		"phone_id": id,
	})
}

// UpdatePhone handles PUT /api/phones/{id}
func (h *PhoneHandler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req UpdatePhoneRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		// An unknown phone is reported before a malformed field
		if _, getErr := h.service.GetPhone(ctx, id); errors.Is(getErr, domain.ErrPhoneNotFound) {
			err = getErr
		}
		h.metrics.RecordMutation("update", err)
		h.handleServiceError(ctx, w, err, "failed to update phone", id)
		return
	}

	phone, err := h.service.UpdatePhone(ctx, id, patch)
	h.metrics.RecordMutation("update", err)
	if err != nil {
		h.handleServiceError(ctx, w, err, "failed to update phone", id)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "Phone updated successfully",
		"phone":   phone,
	})
}

// ListPlatforms handles GET /api/platforms
func (h *PhoneHandler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Catalog())
}

// handleServiceError maps service errors onto HTTP responses
func (h *PhoneHandler) handleServiceError(ctx context.Context, w http.ResponseWriter, err error, msg, id string) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.logger.DebugContext(ctx, msg,
			slog.String("phone_id", id),
			slog.String("field", validationErr.Field),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrPhoneNotFound):
		h.logger.DebugContext(ctx, msg,
			slog.String("phone_id", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusNotFound, "Phone not found")
	default:
		h.logger.ErrorContext(ctx, msg,
			slog.String("phone_id", id),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
