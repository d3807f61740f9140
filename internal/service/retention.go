package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/repo"
)

// RetentionService purges aged location samples and closed trips.
type RetentionService struct {
	repo repo.RetentionRepo
	now  func() time.Time
}

// NewRetentionService constructs a RetentionService backed by the provided RetentionRepo.
func NewRetentionService(r repo.RetentionRepo) *RetentionService {
	return &RetentionService{repo: r, now: time.Now}
}

// Purge deletes data older than olderThanDays days. Open trips survive
// regardless of age. Safe to run repeatedly.
// Returns domain.ErrValidation if olderThanDays is outside
// [1, domain.MaxRetentionDays].
func (s *RetentionService) Purge(ctx context.Context, olderThanDays int) (domain.PurgeResult, error) {
	if olderThanDays < 1 {
		return domain.PurgeResult{}, fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	}
	if olderThanDays > domain.MaxRetentionDays {
		return domain.PurgeResult{}, fmt.Errorf("%w: days must be at most %d", domain.ErrValidation, domain.MaxRetentionDays)
	}

	cutoff := s.now().UTC().AddDate(0, 0, -olderThanDays)
	result, err := s.repo.Purge(ctx, cutoff)
	if err != nil {
		return domain.PurgeResult{}, fmt.Errorf("service.RetentionService.Purge: %w", err)
	}

	slog.InfoContext(ctx, "retention cleanup",
		"deleted_locations", result.DeletedLocations,
		"deleted_trips", result.DeletedTrips,
		"cutoff", result.Cutoff,
	)
	return result, nil
}
