// Package repo contains all database access logic for the SafeReach backend.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/safereach/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
//
// Every state transition is a single SQL statement so that concurrent callers
// are serialised by Postgres row locks and the trips_one_open_per_user index.
type TripRepo interface {
	// UpsertOpen overwrites the destination, radius and contacts of the user's
	// open trip, or inserts a new open trip when none exists.
	UpsertOpen(ctx context.Context, dest domain.Destination) (domain.Trip, error)

	// GetCurrent returns the user's open trip if there is one, otherwise the
	// most recently created closed trip.
	// Returns domain.ErrNotFound if the user has no trips at all.
	GetCurrent(ctx context.Context, userID string) (domain.Trip, error)

	// ClaimArrival closes the trip as arrived, but only if it is still open
	// and its destination and radius are still the ones in evaluated. A trip
	// whose geofence was moved after evaluated was read is left open.
	// Exactly one of any number of concurrent callers gets the trip back;
	// the rest get domain.ErrNotFound.
	ClaimArrival(ctx context.Context, evaluated domain.Trip) (domain.Trip, error)

	// Reset closes the user's open trip without arrival.
	// Returns domain.ErrNotFound if no trip is open.
	Reset(ctx context.Context, userID string) (domain.Trip, error)

	// ListByUser returns every trip for the user, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, user_id, destination_lat, destination_lng, radius_m, contacts,
		       notified, close_reason, created_at, completed_at`

// UpsertOpen relies on ON CONFLICT against the partial unique index, so two
// concurrent calls for one user can never leave two open trips behind.
// notified, close_reason and completed_at are never touched by the update arm.
func (r *pgTripRepo) UpsertOpen(ctx context.Context, dest domain.Destination) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (user_id, destination_lat, destination_lng, radius_m, contacts)
		VALUES (@user_id, @lat, @lng, @radius, @contacts)
		ON CONFLICT (user_id) WHERE NOT notified DO UPDATE
		SET destination_lat = EXCLUDED.destination_lat,
		    destination_lng = EXCLUDED.destination_lng,
		    radius_m        = EXCLUDED.radius_m,
		    contacts        = EXCLUDED.contacts
		RETURNING ` + tripColumns

	contacts := dest.Contacts
	if contacts == nil {
		contacts = []string{}
	}
	args := pgx.NamedArgs{
		"user_id":  dest.UserID,
		"lat":      dest.Lat,
		"lng":      dest.Lng,
		"radius":   dest.RadiusMeters,
		"contacts": contacts,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpsertOpen: %w", err)
	}
	return result, nil
}

// GetCurrent orders open trips first (false sorts before true), then newest.
func (r *pgTripRepo) GetCurrent(ctx context.Context, userID string) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		ORDER BY notified ASC, created_at DESC
		LIMIT 1`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetCurrent: %w", err)
	}
	return result, nil
}

// ClaimArrival is a compare-and-set on notified and the geofence. Under READ
// COMMITTED a concurrent UPDATE of the same row (another claim, a reset, or
// an UpsertOpen moving the destination) makes this one wait, re-evaluate the
// WHERE clause against the new row version, and match nothing.
func (r *pgTripRepo) ClaimArrival(ctx context.Context, evaluated domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET notified     = true,
		    completed_at = now(),
		    close_reason = @reason
		WHERE id = @id
		  AND NOT notified
		  AND destination_lat = @lat
		  AND destination_lng = @lng
		  AND radius_m        = @radius
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":     evaluated.ID,
		"lat":    evaluated.DestinationLat,
		"lng":    evaluated.DestinationLng,
		"radius": evaluated.RadiusMeters,
		"reason": domain.CloseArrived,
	}
	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.ClaimArrival: %w", err)
	}
	return result, nil
}

// Reset closes the open trip for userID.
func (r *pgTripRepo) Reset(ctx context.Context, userID string) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET notified     = true,
		    completed_at = now(),
		    close_reason = @reason
		WHERE user_id = @user_id AND NOT notified
		RETURNING ` + tripColumns

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "reason": domain.CloseReset}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Reset: %w", err)
	}
	return result, nil
}

// ListByUser returns all trips for userID, newest first.
func (r *pgTripRepo) ListByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListByUser: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: rows: %w", err)
	}
	return trips, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and nullable completed_at conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t           domain.Trip
		id          pgtype.UUID
		completedAt pgtype.Timestamptz
	)

	err := s.Scan(&id, &t.UserID, &t.DestinationLat, &t.DestinationLng, &t.RadiusMeters,
		&t.Contacts, &t.Notified, &t.CloseReason, &t.CreatedAt, &completedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if t.Contacts == nil {
		t.Contacts = []string{}
	}
	if completedAt.Valid {
		ca := completedAt.Time
		t.CompletedAt = &ca
	}
	return t, nil
}
