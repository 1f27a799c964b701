package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"regform/internal/platform/metrics"
	"regform/internal/platform/middleware"
	ratelimitmw "regform/internal/ratelimit/middleware"
	"regform/internal/ratelimit/models"
	"regform/pkg/platform/httputil"
	"regform/pkg/platform/middleware/metadata"
	"regform/pkg/platform/middleware/requesttime"
)

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Deps collects everything the router wires together. Nil optional fields
// disable the corresponding feature.
type Deps struct {
	Logger       *slog.Logger
	Registration Registrar
	RateLimiter  *ratelimitmw.Middleware
	HTTPMetrics  *metrics.Metrics
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	Health         HealthCheck

	// TrustedProxies may report the client IP in forwarding headers.
	TrustedProxies *metadata.Proxies

	StaticDir          string
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
}

// NewRouter wires all public endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata(d.TrustedProxies))
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(d.Logger))
	r.Use(metrics.LatencyMiddleware(d.HTTPMetrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{
			middleware.RequestIDHeader,
			"Retry-After",
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		MaxAge: 300,
	}))

	r.Get("/health", healthHandler(d.Health))
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	r.Group(func(api chi.Router) {
		if d.RequestTimeout > 0 {
			api.Use(chimw.Timeout(d.RequestTimeout))
		}
		api.Use(middleware.ContentTypeJSON)
		if d.RateLimiter != nil {
			api.Use(d.RateLimiter.RateLimit(models.ClassRegistration))
		}
		if d.Registration != nil {
			d.Registration.Register(api)
		}
	})

	if d.StaticDir != "" {
		spa := SPAHandler(d.StaticDir, "/registration")
		r.Get("/registration", spa.ServeHTTP)
		r.Get("/registration/*", spa.ServeHTTP)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.Response{
			Status:  httputil.StatusError,
			Message: "Recurso não encontrado.",
		})
	})

	return r
}

func healthHandler(check HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, httputil.Response{
					Status:  httputil.StatusError,
					Message: "dependency unavailable",
				})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Status: "ok"})
	}
}
