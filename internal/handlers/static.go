// internal/handlers/static.go
package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// StaticHandler serves the front-end from a directory on disk
type StaticHandler struct {
	responder
	dir    string
	index  string
	logger *slog.Logger
}

// NewStaticHandler creates a handler serving index and assets from dir
func NewStaticHandler(dir, index string, logger *slog.Logger) *StaticHandler {
	logger = logger.With(slog.String("handler", "static"))

	return &StaticHandler{
		responder: responder{logger: logger},
		dir:       dir,
		index:     index,
		logger:    logger,
	}
}

// RegisterRoutes registers the front-end routes on mux
func (h *StaticHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.dir))))
}

// Index handles GET /
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, h.index)

	if _, err := os.Stat(path); err != nil {
		h.logger.WarnContext(r.Context(), "index file unavailable",
			slog.String("path", path),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusNotFound, "Not found")
		return
	}

	http.ServeFile(w, r, path)
}
