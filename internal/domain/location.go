package domain

import "time"

// Listing bounds for a user's location history.
const (
	DefaultLocationLimit = 1000
	MaxLocationLimit     = 1000
)

// LocationSample is one GPS fix reported by a client. Samples are append-only.
type LocationSample struct {
	ID         int64     `json:"-"`
	UserID     string    `json:"user_id" validate:"required,max=100"`
	Latitude   float64   `json:"lat" validate:"latitude"`
	Longitude  float64   `json:"lng" validate:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	RecordedAt time.Time `json:"timestamp"`
}

// NewLocationLimit resolves an optional ?limit= value.
// Nil or non-positive values fall back to DefaultLocationLimit and the
// result is capped at MaxLocationLimit.
func NewLocationLimit(limit *int) int {
	if limit == nil || *limit < 1 {
		return DefaultLocationLimit
	}
	if *limit > MaxLocationLimit {
		return MaxLocationLimit
	}
	return *limit
}
