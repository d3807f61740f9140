package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler/gen"
)

// NearbyPlaces handles POST /nearby-places.
// Invalid input is a 422. A provider failure is reported as ok=false with an
// empty list and status 200, so the map view degrades instead of erroring.
func (s *Server) NearbyPlaces(ctx context.Context, req gen.NearbyPlacesRequestObject) (gen.NearbyPlacesResponseObject, error) {
	if req.Body.Latitude == nil || req.Body.Longitude == nil {
		return gen.NearbyPlaces422JSONResponse(fieldsBody("latitude and longitude are required")), nil
	}

	q := domain.PlaceQuery{
		Latitude:     *req.Body.Latitude,
		Longitude:    *req.Body.Longitude,
		RadiusMeters: domain.DefaultPlaceRadius,
		PlaceType:    domain.DefaultPlaceType,
	}
	if req.Body.Radius != nil {
		q.RadiusMeters = *req.Body.Radius
	}
	if req.Body.PlaceType != nil && *req.Body.PlaceType != "" {
		q.PlaceType = *req.Body.PlaceType
	}

	places, err := s.places.Nearby(ctx, q)
	if errors.Is(err, domain.ErrValidation) {
		return gen.NearbyPlaces422JSONResponse(validationBody(err)), nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "nearby places lookup failed", "error", err)
		msg := "Failed to fetch places"
		return gen.NearbyPlaces200JSONResponse{Ok: false, Error: &msg, Places: []gen.Place{}}, nil
	}

	out := make([]gen.Place, len(places))
	for i, p := range places {
		out[i] = placeToResponse(p)
	}
	return gen.NearbyPlaces200JSONResponse{Ok: true, Places: out}, nil
}

func placeToResponse(p domain.Place) gen.Place {
	out := gen.Place{
		Name:    p.Name,
		Type:    p.Type,
		Lat:     p.Lat,
		Lng:     p.Lng,
		Rating:  p.Rating,
		Address: p.Address,
	}
	if p.ID != "" {
		id := p.ID
		out.PlaceId = &id
	}
	return out
}
