package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/safereach/backend/internal/domain"
)

// PlacesLookup finds points of interest near a location.
// It is read-only and has no interaction with trips or locations.
type PlacesLookup interface {
	Nearby(ctx context.Context, q domain.PlaceQuery) ([]domain.Place, error)
}

// PlacesService validates nearby-search queries before handing them to the lookup.
type PlacesService struct {
	lookup PlacesLookup
}

// NewPlacesService constructs a PlacesService. lookup may be nil when no
// provider is configured, in which case Nearby returns ErrPlacesDisabled.
func NewPlacesService(lookup PlacesLookup) *PlacesService {
	return &PlacesService{lookup: lookup}
}

// ErrPlacesDisabled is returned when no places provider has been configured.
var ErrPlacesDisabled = errors.New("places lookup not configured")

// Nearby validates q and returns matching places. Results always carry the
// requested place type.
func (s *PlacesService) Nearby(ctx context.Context, q domain.PlaceQuery) ([]domain.Place, error) {
	if err := validateStruct(q); err != nil {
		return nil, err
	}
	if s.lookup == nil {
		return nil, ErrPlacesDisabled
	}

	places, err := s.lookup.Nearby(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service.PlacesService.Nearby: %w", err)
	}
	out := make([]domain.Place, 0, len(places))
	for _, p := range places {
		p.Type = q.PlaceType
		out = append(out, p)
	}
	return out, nil
}
