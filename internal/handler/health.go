package handler

import (
	"context"
	"time"

	"github.com/pkordes/safereach/backend/internal/handler/gen"
)

// healthTimeout bounds the database ping.
const healthTimeout = 2 * time.Second

// GetHealthz handles GET /healthz.
// It returns 200 when the database answers a ping and 503 otherwise.
func (s *Server) GetHealthz(ctx context.Context, _ gen.GetHealthzRequestObject) (gen.GetHealthzResponseObject, error) {
	h, ok := s.health(ctx)
	if !ok {
		return gen.GetHealthz503JSONResponse(h), nil
	}
	return gen.GetHealthz200JSONResponse(h), nil
}

// GetHealth handles GET /health, an alias kept for older clients.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	h, ok := s.health(ctx)
	if !ok {
		return gen.GetHealth503JSONResponse(h), nil
	}
	return gen.GetHealth200JSONResponse(h), nil
}

func (s *Server) health(ctx context.Context) (gen.Health, bool) {
	checks := map[string]string{"database": "ok"}
	h := gen.Health{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Checks:    &checks,
	}
	if s.environment != "" {
		h.Environment = &s.environment
	}

	if s.db == nil {
		return h, true
	}
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := s.db.Ping(ctx); err != nil {
		msg := err.Error()
		h.Status = "unhealthy"
		checks["database"] = "unreachable"
		h.Error = &msg
		return h, false
	}
	return h, true
}
