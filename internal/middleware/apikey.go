package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// APIKeyHeader carries the operator key on admin requests.
const APIKeyHeader = "X-API-Key"

// NewAPIKeyHandler returns a middleware that admits only requests whose
// X-API-Key header matches one of keys. With no keys configured every
// request is rejected, so admin routes are closed by default.
func NewAPIKeyHandler(keys []string) func(http.Handler) http.Handler {
	allowed := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			allowed = append(allowed, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(APIKeyHeader))
			if len(got) == 0 || !matchAny(got, allowed) {
				slog.WarnContext(r.Context(), "admin request rejected", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewScopedAPIKeyHandler guards only requests whose context carries
// scopeKey. The generated server sets that key on operations that declare
// the API key security scheme, so the guard can be installed for every
// operation and still leave public ones open.
func NewScopedAPIKeyHandler(keys []string, scopeKey any) func(http.Handler) http.Handler {
	guard := NewAPIKeyHandler(keys)
	return func(next http.Handler) http.Handler {
		guarded := guard(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Value(scopeKey) == nil {
				next.ServeHTTP(w, r)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}

// matchAny compares got against every key in constant time.
func matchAny(got []byte, keys [][]byte) bool {
	ok := 0
	for _, k := range keys {
		ok |= subtle.ConstantTimeCompare(got, k)
	}
	return ok == 1
}
