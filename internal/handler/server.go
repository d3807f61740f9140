// Package handler implements the HTTP handlers for the SafeReach API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler/gen"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	SetDestination(ctx context.Context, dest domain.Destination) (domain.Trip, error)
	CheckArrival(ctx context.Context, userID string, lat, lng float64) (domain.ArrivalStatus, error)
	ResetTrip(ctx context.Context, userID string) (bool, error)
	ListTrips(ctx context.Context, userID string) ([]domain.Trip, error)
}

// LocationServicer records and lists GPS samples.
type LocationServicer interface {
	Record(ctx context.Context, sample domain.LocationSample) (domain.LocationSample, error)
	List(ctx context.Context, userID string, limit *int) ([]domain.LocationSample, error)
}

// MessageServicer sends ad-hoc SMS.
type MessageServicer interface {
	Send(ctx context.Context, msg domain.Message) ([]domain.Delivery, error)
}

// PlacesServicer runs nearby searches.
type PlacesServicer interface {
	Nearby(ctx context.Context, q domain.PlaceQuery) ([]domain.Place, error)
}

// RetentionServicer purges aged data.
type RetentionServicer interface {
	Purge(ctx context.Context, olderThanDays int) (domain.PurgeResult, error)
}

// Pinger reports database reachability. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators a Server needs. Nil fields are allowed in tests
// that do not exercise the corresponding routes.
type Deps struct {
	Trips     TripServicer
	Locations LocationServicer
	Messages  MessageServicer
	Places    PlacesServicer
	Retention RetentionServicer
	DB        Pinger

	// Environment is reported by /healthz.
	Environment string
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it with NewRouter.
type Server struct {
	trips       TripServicer
	locations   LocationServicer
	messages    MessageServicer
	places      PlacesServicer
	retention   RetentionServicer
	db          Pinger
	environment string
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	return &Server{
		trips:     d.Trips,
		locations: d.Locations,
		messages:  d.Messages,
		places:    d.Places,
		retention: d.Retention,
		db:        d.DB,

		environment: d.Environment,
	}
}
