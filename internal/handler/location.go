package handler

import (
	"context"
	"errors"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler/gen"
	"github.com/pkordes/safereach/backend/internal/service"
)

// PostGPS handles POST /gps.
func (s *Server) PostGPS(ctx context.Context, req gen.PostGPSRequestObject) (gen.PostGPSResponseObject, error) {
	lat, lng, ok := coords(req.Body)
	if !ok {
		return gen.PostGPS400JSONResponse(requestBody("Missing latitude or longitude")), nil
	}

	sample := domain.LocationSample{
		UserID:    req.Body.UserId,
		Latitude:  lat,
		Longitude: lng,
		Accuracy:  req.Body.Accuracy,
	}
	if req.Body.Timestamp != nil {
		sample.RecordedAt = *req.Body.Timestamp
	}

	saved, err := s.locations.Record(ctx, sample)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.PostGPS422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.PostGPS200JSONResponse{
		Ok:         true,
		Message:    "Location saved",
		RecordedAt: saved.RecordedAt,
	}, nil
}

// GetLocations handles GET /locations/{user_id}.
// Supports ?limit= (default and maximum 1000).
func (s *Server) GetLocations(ctx context.Context, req gen.GetLocationsRequestObject) (gen.GetLocationsResponseObject, error) {
	userID := service.SanitizeUserID(req.UserId)

	samples, err := s.locations.List(ctx, userID, req.Params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetLocations422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	out := make([]gen.Location, len(samples))
	for i, smp := range samples {
		out[i] = gen.Location{
			Lat:       smp.Latitude,
			Lng:       smp.Longitude,
			Accuracy:  smp.Accuracy,
			Timestamp: smp.RecordedAt,
		}
	}
	return gen.GetLocations200JSONResponse{
		UserId:    userID,
		Count:     len(out),
		Locations: out,
	}, nil
}

// coords resolves the two coordinate naming conventions of a Position.
// The long names win when both are present. ok is false when either
// coordinate is missing under both names.
func coords(p *gen.Position) (lat, lng float64, ok bool) {
	if p == nil {
		return 0, 0, false
	}
	latp, lngp := p.Latitude, p.Longitude
	if latp == nil {
		latp = p.Lat
	}
	if lngp == nil {
		lngp = p.Lng
	}
	if latp == nil || lngp == nil {
		return 0, 0, false
	}
	return *latp, *lngp, true
}
