package domain

import "time"

// DefaultRetentionDays is used by the cleanup endpoint and CLI when no
// explicit window is supplied.
const DefaultRetentionDays = 30

// MaxRetentionDays bounds a cleanup window to a century, which keeps the
// cutoff inside the range Postgres can store as timestamptz.
const MaxRetentionDays = 36500

// PurgeResult reports how many rows a retention cleanup removed.
type PurgeResult struct {
	DeletedLocations int64
	DeletedTrips     int64
	Cutoff           time.Time
}
