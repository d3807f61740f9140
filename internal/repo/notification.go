package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/safereach/backend/internal/domain"
)

// NotificationRepo records the outcome of every arrival SMS so that failed
// deliveries remain visible after the trip has been closed.
type NotificationRepo interface {
	// Record stores one row per delivery for the given trip.
	Record(ctx context.Context, tripID uuid.UUID, deliveries []domain.Delivery) error

	// ListByTrip returns the deliveries recorded for a trip in send order.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Notification, error)
}

// pgNotificationRepo is the Postgres implementation of NotificationRepo.
type pgNotificationRepo struct {
	db db
}

// NewNotificationRepo constructs a NotificationRepo backed by the provided db connection.
func NewNotificationRepo(db db) NotificationRepo {
	return &pgNotificationRepo{db: db}
}

// Record sends all inserts in a single batch round trip.
func (r *pgNotificationRepo) Record(ctx context.Context, tripID uuid.UUID, deliveries []domain.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	const q = `
		INSERT INTO notifications (trip_id, phone, message_id, error)
		VALUES (@trip_id, @phone, @message_id, @error)`

	batch := &pgx.Batch{}
	for _, d := range deliveries {
		errText := ""
		if d.Err != nil {
			errText = d.Err.Error()
		}
		batch.Queue(q, pgx.NamedArgs{
			"trip_id":    tripID,
			"phone":      d.Phone,
			"message_id": d.MessageID,
			"error":      errText,
		})
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("repo.NotificationRepo.Record: %w", err)
	}
	return nil
}

func (r *pgNotificationRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Notification, error) {
	const q = `
		SELECT id, trip_id, phone, message_id, error, sent_at
		FROM notifications
		WHERE trip_id = @trip_id
		ORDER BY sent_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.NotificationRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	out := []domain.Notification{}
	for rows.Next() {
		var (
			n          domain.Notification
			id, tripPK pgtype.UUID
		)
		if err := rows.Scan(&id, &tripPK, &n.Phone, &n.MessageID, &n.Error, &n.SentAt); err != nil {
			return nil, fmt.Errorf("repo.NotificationRepo.ListByTrip: scan: %w", err)
		}
		n.ID = uuid.UUID(id.Bytes)
		n.TripID = uuid.UUID(tripPK.Bytes)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.NotificationRepo.ListByTrip: rows: %w", err)
	}
	return out, nil
}
