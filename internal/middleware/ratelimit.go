package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/pkordes/safereach/backend/internal/metrics"
)

// RateLimiter builds per-route limiters keyed by client IP.
// A disabled RateLimiter returns pass-through middleware, which tests use.
type RateLimiter struct {
	disabled bool
}

// NewRateLimiter returns a RateLimiter. When disabled is true no limits apply.
func NewRateLimiter(disabled bool) *RateLimiter {
	return &RateLimiter{disabled: disabled}
}

// PerMinute allows n requests per minute per IP. chimiddleware.RealIP should
// run first so proxied clients are told apart.
func (rl *RateLimiter) PerMinute(n int) func(http.Handler) http.Handler {
	if rl.disabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(n, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(onLimit),
	)
}

// ByRoute gives each chi route pattern in perMinute its own per-minute
// budget; unlisted routes pass through. It has to run after chi has matched
// the route, as the generated server's handler middlewares do.
func (rl *RateLimiter) ByRoute(perMinute map[string]int) func(http.Handler) http.Handler {
	limits := make(map[string]func(http.Handler) http.Handler, len(perMinute))
	for route, n := range perMinute {
		limits[route] = rl.PerMinute(n)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit, ok := limits[routePattern(r)]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			limit(next).ServeHTTP(w, r)
		})
	}
}

func onLimit(w http.ResponseWriter, r *http.Request) {
	metrics.RateLimited.WithLabelValues(routePattern(r)).Inc()
	writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests, slow down")
}

// routePattern is the matched chi pattern, or the raw path outside a router.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return r.URL.Path
}
