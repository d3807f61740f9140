// Package domain contains the core data types for the SafeReach backend.
// It is imported by every other internal package (repo, service, handler)
// and depends on nothing in this module.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip close reasons. An open trip has an empty CloseReason.
const (
	CloseArrived = "arrived"
	CloseReset   = "reset"
)

// Geofence radius bounds in metres, and the radius used when a client omits it.
const (
	MinRadiusMeters     = 50
	MaxRadiusMeters     = 5000
	DefaultRadiusMeters = 500
)

// Trip is a user's journey towards a single destination.
// A trip is open while Notified is false; at most one open trip exists per user.
// Contacts is the snapshot taken when the destination was last set.
type Trip struct {
	ID             uuid.UUID  `json:"id"`
	UserID         string     `json:"user_id"`
	DestinationLat float64    `json:"destination_lat"`
	DestinationLng float64    `json:"destination_lng"`
	RadiusMeters   float64    `json:"geofence_radius"`
	Contacts       []string   `json:"contacts"`
	Notified       bool       `json:"notified"`
	CloseReason    string     `json:"close_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"` // nil while open
}

// Open reports whether the trip is still waiting for arrival.
func (t Trip) Open() bool {
	return !t.Notified
}

// Destination is the input to SetDestination.
type Destination struct {
	UserID       string   `validate:"required,max=100"`
	Lat          float64  `validate:"latitude"`
	Lng          float64  `validate:"longitude"`
	RadiusMeters float64  `validate:"gte=50,lte=5000"`
	Contacts     []string `validate:"dive,required,e164ish"`
}

// ArrivalStatus is the result of an arrival check.
//
// Active is false when the user has no current trip; all other fields are
// then zero. NotificationsSent is true once the trip has been claimed for
// notification, whether by this call or an earlier one. Deliveries is only
// populated on the call that actually dispatched.
type ArrivalStatus struct {
	TripID            uuid.UUID
	Active            bool
	Arrived           bool
	DistanceMeters    float64
	RadiusMeters      float64
	NotificationsSent bool
	Deliveries        []Delivery
}
