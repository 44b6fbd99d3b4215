package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"clinic/internal/clinic/metrics"
	"clinic/internal/platform/middleware"
	"clinic/pkg/platform/httputil"
	"clinic/pkg/platform/middleware/metadata"
	"clinic/pkg/platform/middleware/requesttime"
)

// RouteRegistrar is implemented by every feature handler mounted on the API.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// RouterConfig carries the middleware settings for the public API.
type RouterConfig struct {
	// RateLimit is requests per client IP per minute. Zero disables limiting.
	RateLimit   int
	CORSOrigins []string
}

// NewRouter builds the API router: shared middleware first, then the health
// probe and every registrar's routes.
func NewRouter(cfg RouterConfig, logger *slog.Logger, m *metrics.Metrics, handlers ...RouteRegistrar) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	if cfg.RateLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	}
	r.Use(middleware.Latency(m))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	for _, h := range handlers {
		h.Register(r)
	}
	return r
}
