package handler

import (
	"context"
	"errors"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler/gen"
)

// Cleanup handles POST /admin/cleanup?days=N (default 30).
// The API key is checked by middleware.NewScopedAPIKeyHandler before this runs.
func (s *Server) Cleanup(ctx context.Context, req gen.CleanupRequestObject) (gen.CleanupResponseObject, error) {
	days := domain.DefaultRetentionDays
	if req.Params.Days != nil {
		days = *req.Params.Days
	}

	res, err := s.retention.Purge(ctx, days)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.Cleanup422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.Cleanup200JSONResponse{
		Ok:               true,
		DeletedLocations: res.DeletedLocations,
		DeletedTrips:     res.DeletedTrips,
		CutoffDate:       res.Cutoff,
	}, nil
}
