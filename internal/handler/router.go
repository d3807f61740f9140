package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/safereach/backend/internal/handler/gen"
	"github.com/pkordes/safereach/backend/internal/middleware"
)

// RouterOptions configures the middleware stack around the handlers.
type RouterOptions struct {
	Logger      *slog.Logger
	CORSOrigins []string
	APIKeys     []string
	// FrontendDir is served at /, /static and /frontend when it exists.
	FrontendDir string
	// OpenAPI is served verbatim at /openapi.yaml.
	OpenAPI []byte
	// RateLimitDisabled turns the per-route limits off.
	RateLimitDisabled bool
	// MaxBodyBytes caps JSON request bodies. Zero means middleware.DefaultMaxBodySize.
	MaxBodyBytes int64
}

// Per-minute, per-IP request budgets, keyed by route pattern.
var routeBudgets = map[string]int{
	"/gps":                  60,
	"/locations/{user_id}":  30,
	"/trip/set-destination": 10,
	"/trip/check-arrival":   60,
	"/trip/reset":           10,
	"/trips/{user_id}":      30,
	"/send-message":         10,
	"/nearby-places":        20,
}

// NewRouter builds the complete HTTP handler: global middleware, the
// generated API routes, metrics and static files. main.go and the handler
// tests both go through it.
//
// Middleware is applied in order: RequestID → RealIP → SlogLogger →
// Prometheus → Recoverer → CORS → MaxBodySize. Per-route rate limits and the
// admin API key run inside the generated wrapper, after routing.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := opts.MaxBodyBytes
	if maxBody == 0 {
		maxBody = middleware.DefaultMaxBodySize
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewPrometheusHandler())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBody))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", serveOpenAPI(opts.OpenAPI))

	// Register handlers. gen.NewStrictHandlerWithOptions adapts our
	// StrictServerInterface to the chi-compatible ServerInterface.
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: responseError,
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter: r,
		Middlewares: []gen.MiddlewareFunc{
			middleware.NewRateLimiter(opts.RateLimitDisabled).ByRoute(routeBudgets),
			middleware.NewScopedAPIKeyHandler(opts.APIKeys, gen.ApiKeyScopes),
		},
		ErrorHandlerFunc: requestError,
	})

	s.mountFrontend(r, opts.FrontendDir)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}

func serveOpenAPI(doc []byte) http.HandlerFunc {
	modTime := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		if len(doc) == 0 {
			writeError(w, http.StatusNotFound, "not_found", "no API description bundled")
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		http.ServeContent(w, r, "openapi.yaml", modTime, bytes.NewReader(doc))
	}
}
