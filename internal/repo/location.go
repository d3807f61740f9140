package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/safereach/backend/internal/domain"
)

// LocationRepo defines the persistence operations for location samples.
// Samples are append-only; there is no update or single-row delete.
type LocationRepo interface {
	// Append inserts a sample and returns it with id and recorded_at populated.
	// A zero RecordedAt is replaced by the database clock.
	Append(ctx context.Context, s domain.LocationSample) (domain.LocationSample, error)

	// ListByUser returns up to limit samples for the user, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.LocationSample, error)
}

// pgLocationRepo is the Postgres implementation of LocationRepo.
type pgLocationRepo struct {
	db db
}

// NewLocationRepo constructs a LocationRepo backed by the provided db connection.
func NewLocationRepo(db db) LocationRepo {
	return &pgLocationRepo{db: db}
}

func (r *pgLocationRepo) Append(ctx context.Context, s domain.LocationSample) (domain.LocationSample, error) {
	const q = `
		INSERT INTO locations (user_id, latitude, longitude, accuracy, recorded_at)
		VALUES (@user_id, @lat, @lng, @accuracy, COALESCE(@recorded_at, now()))
		RETURNING id, user_id, latitude, longitude, accuracy, recorded_at`

	var recordedAt *time.Time
	if !s.RecordedAt.IsZero() {
		recordedAt = &s.RecordedAt
	}
	args := pgx.NamedArgs{
		"user_id":     s.UserID,
		"lat":         s.Latitude,
		"lng":         s.Longitude,
		"accuracy":    s.Accuracy, // nil becomes NULL
		"recorded_at": recordedAt,
	}

	result, err := scanLocation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.LocationSample{}, fmt.Errorf("repo.LocationRepo.Append: %w", err)
	}
	return result, nil
}

func (r *pgLocationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.LocationSample, error) {
	const q = `
		SELECT id, user_id, latitude, longitude, accuracy, recorded_at
		FROM locations
		WHERE user_id = @user_id
		ORDER BY recorded_at DESC, id DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	samples := []domain.LocationSample{}
	for rows.Next() {
		s, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LocationRepo.ListByUser: scan: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.ListByUser: rows: %w", err)
	}
	return samples, nil
}

func scanLocation(s scanner) (domain.LocationSample, error) {
	var l domain.LocationSample
	err := s.Scan(&l.ID, &l.UserID, &l.Latitude, &l.Longitude, &l.Accuracy, &l.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LocationSample{}, domain.ErrNotFound
		}
		return domain.LocationSample{}, err
	}
	return l, nil
}
