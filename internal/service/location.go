package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/repo"
)

// maxClockSkew is how far ahead of the server clock a client timestamp may be.
const maxClockSkew = 5 * time.Minute

// LocationService ingests and serves GPS samples. It has no business logic
// beyond validation and persistence.
type LocationService struct {
	locations repo.LocationRepo
	now       func() time.Time
}

// NewLocationService constructs a LocationService backed by the provided LocationRepo.
func NewLocationService(locations repo.LocationRepo) *LocationService {
	return &LocationService{locations: locations, now: time.Now}
}

// Record validates and appends a sample. A zero RecordedAt is stamped by the
// store; a client timestamp later than now plus maxClockSkew is rejected so
// future-dated samples cannot outlive retention or skew ordering.
// Returns domain.ErrValidation for bad input, before touching the store.
func (s *LocationService) Record(ctx context.Context, sample domain.LocationSample) (domain.LocationSample, error) {
	sample.UserID = SanitizeUserID(sample.UserID)
	if err := validateStruct(sample); err != nil {
		return domain.LocationSample{}, err
	}
	if sample.RecordedAt.After(s.now().Add(maxClockSkew)) {
		return domain.LocationSample{}, fmt.Errorf("service.LocationService.Record: %w: timestamp is in the future", domain.ErrValidation)
	}

	saved, err := s.locations.Append(ctx, sample)
	if err != nil {
		return domain.LocationSample{}, fmt.Errorf("service.LocationService.Record: %w", err)
	}
	return saved, nil
}

// List returns the user's samples, most recent first, bounded by
// domain.MaxLocationLimit. Always returns a non-nil slice.
func (s *LocationService) List(ctx context.Context, userID string, limit *int) ([]domain.LocationSample, error) {
	userID = SanitizeUserID(userID)
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	samples, err := s.locations.ListByUser(ctx, userID, domain.NewLocationLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("service.LocationService.List: %w", err)
	}
	if samples == nil {
		return []domain.LocationSample{}, nil
	}
	return samples, nil
}
