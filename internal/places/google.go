// Package places looks up points of interest through the Google Maps
// Places API.
package places

import (
	"context"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"

	"github.com/pkordes/safereach/backend/internal/domain"
)

// searcher is the subset of *maps.Client used here.
type searcher interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

// Google implements service.PlacesLookup with a Nearby Search request.
type Google struct {
	client searcher
}

// NewGoogle builds a Google lookup authenticated with apiKey.
func NewGoogle(apiKey string) (*Google, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("places.NewGoogle: %w", err)
	}
	return &Google{client: c}, nil
}

// Nearby returns the first page of results around q's point.
func (g *Google) Nearby(ctx context.Context, q domain.PlaceQuery) ([]domain.Place, error) {
	resp, err := g.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: q.Latitude, Lng: q.Longitude},
		Radius:   uint(q.RadiusMeters),
		Type:     maps.PlaceType(q.PlaceType),
	})
	if err != nil {
		return nil, fmt.Errorf("places.Google.Nearby: %w", err)
	}

	slog.DebugContext(ctx, "nearby search", "type", q.PlaceType, "results", len(resp.Results))
	out := make([]domain.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, toPlace(r, q))
	}
	return out, nil
}

// toPlace maps one API result. A result without coordinates falls back to
// the query point, and a nameless one is called "Unknown".
func toPlace(r maps.PlacesSearchResult, q domain.PlaceQuery) domain.Place {
	p := domain.Place{
		ID:      r.PlaceID,
		Name:    r.Name,
		Type:    q.PlaceType,
		Lat:     r.Geometry.Location.Lat,
		Lng:     r.Geometry.Location.Lng,
		Rating:  float64(r.Rating),
		Address: r.Vicinity,
	}
	if p.Name == "" {
		p.Name = "Unknown"
	}
	if p.Lat == 0 && p.Lng == 0 {
		p.Lat, p.Lng = q.Latitude, q.Longitude
	}
	return p
}
