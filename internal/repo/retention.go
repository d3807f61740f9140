package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/safereach/backend/internal/domain"
)

// RetentionRepo removes aged data from every table in one transaction.
type RetentionRepo interface {
	// Purge deletes locations recorded before cutoff and closed trips completed
	// before cutoff. Open trips are never touched, whatever their age.
	Purge(ctx context.Context, cutoff time.Time) (domain.PurgeResult, error)
}

// pgRetentionRepo is the Postgres implementation of RetentionRepo.
type pgRetentionRepo struct {
	db db
}

// NewRetentionRepo constructs a RetentionRepo backed by the provided db connection.
// When db is itself a pgx.Tx the purge runs inside a savepoint.
func NewRetentionRepo(db db) RetentionRepo {
	return &pgRetentionRepo{db: db}
}

func (r *pgRetentionRepo) Purge(ctx context.Context, cutoff time.Time) (domain.PurgeResult, error) {
	const (
		deleteLocations = `DELETE FROM locations WHERE recorded_at < @cutoff`
		deleteTrips     = `DELETE FROM trips WHERE notified AND completed_at < @cutoff`
	)

	result := domain.PurgeResult{Cutoff: cutoff}
	args := pgx.NamedArgs{"cutoff": cutoff}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, deleteLocations, args)
		if err != nil {
			return fmt.Errorf("locations: %w", err)
		}
		result.DeletedLocations = tag.RowsAffected()

		tag, err = tx.Exec(ctx, deleteTrips, args)
		if err != nil {
			return fmt.Errorf("trips: %w", err)
		}
		result.DeletedTrips = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return domain.PurgeResult{}, fmt.Errorf("repo.RetentionRepo.Purge: %w", err)
	}
	return result, nil
}
