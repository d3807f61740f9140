// Package service contains the business logic for the SafeReach backend.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/geo"
	"github.com/pkordes/safereach/backend/internal/metrics"
	"github.com/pkordes/safereach/backend/internal/repo"
)

// arrivalTemplate is the SMS sent to every contact on arrival.
const arrivalTemplate = "SafeReach: User has safely reached their destination!\n\nTime: %s"

// TripService owns the trip lifecycle: setting a destination, detecting
// arrival, and abandoning a trip.
//
// The "notify once" rule is enforced by TripRepo.ClaimArrival, a conditional
// UPDATE on the trip's open state and geofence that only one caller can win.
// Notifications are sent after the claim has committed, so no database lock
// is held across SMS round trips. A crash between claim and send drops that
// alert; it is never sent twice.
type TripService struct {
	trips    repo.TripRepo
	notes    repo.NotificationRepo
	notifier Notifier
	now      func() time.Time
}

// NewTripService constructs a TripService. notes may be nil, in which case
// delivery outcomes are only logged.
func NewTripService(trips repo.TripRepo, notes repo.NotificationRepo, notifier Notifier) *TripService {
	return &TripService{trips: trips, notes: notes, notifier: notifier, now: time.Now}
}

// SetDestination validates dest and upserts the user's open trip.
// An existing open trip is updated in place; otherwise a new one is created.
// Returns domain.ErrValidation for bad input, before touching the store.
func (s *TripService) SetDestination(ctx context.Context, dest domain.Destination) (domain.Trip, error) {
	dest.UserID = SanitizeUserID(dest.UserID)
	contacts := make([]string, 0, len(dest.Contacts))
	for _, c := range dest.Contacts {
		contacts = append(contacts, NormalizePhone(c))
	}
	dest.Contacts = contacts

	if err := validateStruct(dest); err != nil {
		return domain.Trip{}, err
	}

	trip, err := s.trips.UpsertOpen(ctx, dest)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetDestination: %w", err)
	}
	slog.InfoContext(ctx, "destination set", "user_id", trip.UserID, "trip_id", trip.ID)
	return trip, nil
}

// claimAttempts bounds how often CheckArrival re-reads a trip whose claim
// was lost to a concurrent SetDestination.
const claimAttempts = 3

// CheckArrival evaluates the user's position against their current trip and,
// on first arrival, notifies every contact.
//
// A user with no trips, or whose latest trip was reset, gets an inactive
// status and no error. Once a trip has been claimed, later calls report
// NotificationsSent without invoking the notifier again.
//
// The claim only succeeds against the exact geofence that was evaluated. When
// it loses, the trip is read and evaluated again: another caller may have
// notified, the trip may have been reset, or its destination may have moved.
func (s *TripService) CheckArrival(ctx context.Context, userID string, lat, lng float64) (domain.ArrivalStatus, error) {
	userID = SanitizeUserID(userID)
	if err := validatePosition(userID, lat, lng); err != nil {
		return domain.ArrivalStatus{}, err
	}
	here := geo.Point{Lat: lat, Lng: lng}

	var status domain.ArrivalStatus
	for attempt := 1; ; attempt++ {
		trip, err := s.trips.GetCurrent(ctx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ArrivalStatus{}, nil
		}
		if err != nil {
			return domain.ArrivalStatus{}, fmt.Errorf("service.TripService.CheckArrival: %w", err)
		}
		if trip.CloseReason == domain.CloseReset {
			return domain.ArrivalStatus{}, nil
		}

		v := geo.Evaluate(here, geo.Point{Lat: trip.DestinationLat, Lng: trip.DestinationLng}, trip.RadiusMeters)
		status = domain.ArrivalStatus{
			TripID:            trip.ID,
			Active:            true,
			Arrived:           v.Arrived,
			DistanceMeters:    v.DistanceMeters,
			RadiusMeters:      trip.RadiusMeters,
			NotificationsSent: trip.Notified,
		}
		if !v.Arrived || trip.Notified || len(trip.Contacts) == 0 {
			return status, nil
		}

		claimed, err := s.trips.ClaimArrival(ctx, trip)
		if errors.Is(err, domain.ErrNotFound) {
			if attempt < claimAttempts {
				continue
			}
			slog.WarnContext(ctx, "arrival claim kept losing; leaving trip for the next check",
				"user_id", userID, "trip_id", trip.ID, "attempts", attempt)
			return status, nil
		}
		if err != nil {
			return domain.ArrivalStatus{}, fmt.Errorf("service.TripService.CheckArrival: claim: %w", err)
		}
		return s.notifyArrival(ctx, userID, claimed, status), nil
	}
}

// notifyArrival dispatches the arrival SMS for a trip this caller has just
// claimed and records the outcomes.
func (s *TripService) notifyArrival(ctx context.Context, userID string, claimed domain.Trip, status domain.ArrivalStatus) domain.ArrivalStatus {
	metrics.ArrivalsClaimed.Inc()
	status.NotificationsSent = true

	body := fmt.Sprintf(arrivalTemplate, s.now().Format("2006-01-02 15:04:05"))
	status.Deliveries = dispatch(ctx, s.notifier, claimed.Contacts, body)
	slog.InfoContext(ctx, "arrival notifications dispatched",
		"user_id", userID,
		"trip_id", claimed.ID,
		"sent", countOK(status.Deliveries),
		"failed", len(status.Deliveries)-countOK(status.Deliveries),
	)

	if s.notes != nil {
		// The trip is already closed; a logging failure must not turn a
		// delivered alert into a 500.
		if err := s.notes.Record(context.WithoutCancel(ctx), claimed.ID, status.Deliveries); err != nil {
			slog.ErrorContext(ctx, "failed to record notifications", "trip_id", claimed.ID, "error", err)
		}
	}
	return status
}

// ResetTrip closes the user's open trip without notifying anyone.
// Returns false, with no error, when the user has no open trip.
func (s *TripService) ResetTrip(ctx context.Context, userID string) (bool, error) {
	userID = SanitizeUserID(userID)
	if err := validateUserID(userID); err != nil {
		return false, err
	}

	trip, err := s.trips.Reset(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("service.TripService.ResetTrip: %w", err)
	}
	slog.InfoContext(ctx, "trip reset", "user_id", userID, "trip_id", trip.ID)
	return true, nil
}

// ListTrips returns the user's trip history, newest first.
func (s *TripService) ListTrips(ctx context.Context, userID string) ([]domain.Trip, error) {
	userID = SanitizeUserID(userID)
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListTrips: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// position is the validated shape of an arrival check.
type position struct {
	UserID    string  `validate:"required,max=100"`
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

func validatePosition(userID string, lat, lng float64) error {
	return validateStruct(position{UserID: userID, Latitude: lat, Longitude: lng})
}

type userRef struct {
	UserID string `validate:"required,max=100"`
}

func validateUserID(userID string) error {
	return validateStruct(userRef{UserID: userID})
}
