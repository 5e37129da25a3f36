// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/resell-phones/internal/core/ports"
	"github.com/ammerola/resell-phones/internal/handlers/middleware"
	"github.com/ammerola/resell-phones/internal/pkg/config"
	"github.com/ammerola/resell-phones/internal/pkg/metrics"
)

// RouterDeps holds what the HTTP layer needs from the rest of the application
type RouterDeps struct {
	Phones  ports.PhoneService
	Auth    ports.AuthService
	Store   ports.PhoneRepository
	Metrics *metrics.Metrics
}

// NewRouter registers every route on a new ServeMux and wraps it in the
// middleware chain configured by cfg
func NewRouter(cfg *config.Config, deps RouterDeps, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	NewPhoneHandler(deps.Phones, deps.Metrics, logger).RegisterRoutes(mux)
	NewExportHandler(deps.Phones, logger).RegisterRoutes(mux)
	NewAuthHandler(deps.Auth, deps.Metrics, logger).RegisterRoutes(mux)
	NewStaticHandler(cfg.Server.StaticDir, cfg.Server.IndexFile, logger).RegisterRoutes(mux)

	if cfg.Server.EnableHealthCheck {
		NewHealthHandler(deps.Store, cfg, logger).RegisterRoutes(mux)
	}

	if cfg.Server.EnableMetrics && deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics.Handler())
	}

	// First listed is outermost. Metrics must wrap the mux directly so the
	// matched route pattern is visible to it.
	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.Logger(logger),
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		chain = append(chain, middleware.CORS(cfg.Security.AllowedOrigins))
	}

	if cfg.Security.SecureHeaders {
		chain = append(chain, middleware.SecureHeaders)
	}

	if cfg.Security.RateLimitRequests > 0 {
		chain = append(chain, middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}

	chain = append(chain, middleware.Compression)

	if cfg.Server.WriteTimeout > 0 {
		chain = append(chain, middleware.Timeout(cfg.Server.WriteTimeout))
	}

	if deps.Metrics != nil {
		chain = append(chain, middleware.Metrics(deps.Metrics))
	}

	return middleware.Chain(mux, chain...)
}
