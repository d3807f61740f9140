package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/repo"
	"github.com/pkordes/safereach/backend/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	upsertOpen   func(ctx context.Context, dest domain.Destination) (domain.Trip, error)
	getCurrent   func(ctx context.Context, userID string) (domain.Trip, error)
	claimArrival func(ctx context.Context, evaluated domain.Trip) (domain.Trip, error)
	reset        func(ctx context.Context, userID string) (domain.Trip, error)
	listByUser   func(ctx context.Context, userID string) ([]domain.Trip, error)
}

func (m *mockTripRepo) UpsertOpen(ctx context.Context, dest domain.Destination) (domain.Trip, error) {
	return m.upsertOpen(ctx, dest)
}
func (m *mockTripRepo) GetCurrent(ctx context.Context, userID string) (domain.Trip, error) {
	return m.getCurrent(ctx, userID)
}
func (m *mockTripRepo) ClaimArrival(ctx context.Context, evaluated domain.Trip) (domain.Trip, error) {
	return m.claimArrival(ctx, evaluated)
}
func (m *mockTripRepo) Reset(ctx context.Context, userID string) (domain.Trip, error) {
	return m.reset(ctx, userID)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	return m.listByUser(ctx, userID)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// memTripRepo is an in-memory repo.TripRepo with the same atomicity as the
// Postgres one: every method holds the mutex for its whole read-modify-write.
type memTripRepo struct {
	mu    sync.Mutex
	trips map[uuid.UUID]domain.Trip
	seq   int
}

func newMemTripRepo() *memTripRepo {
	return &memTripRepo{trips: map[uuid.UUID]domain.Trip{}}
}

func (m *memTripRepo) UpsertOpen(_ context.Context, dest domain.Destination) (domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.trips {
		if t.UserID == dest.UserID && t.Open() {
			t.DestinationLat, t.DestinationLng = dest.Lat, dest.Lng
			t.RadiusMeters = dest.RadiusMeters
			t.Contacts = append([]string{}, dest.Contacts...)
			m.trips[id] = t
			return t, nil
		}
	}
	m.seq++
	t := domain.Trip{
		ID:             uuid.New(),
		UserID:         dest.UserID,
		DestinationLat: dest.Lat,
		DestinationLng: dest.Lng,
		RadiusMeters:   dest.RadiusMeters,
		Contacts:       append([]string{}, dest.Contacts...),
		CreatedAt:      time.Unix(int64(m.seq), 0),
	}
	m.trips[t.ID] = t
	return t, nil
}

func (m *memTripRepo) GetCurrent(_ context.Context, userID string) (domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	trips := m.byUser(userID)
	if len(trips) == 0 {
		return domain.Trip{}, domain.ErrNotFound
	}
	for _, t := range trips {
		if t.Open() {
			return t, nil
		}
	}
	return trips[0], nil
}

func (m *memTripRepo) ClaimArrival(_ context.Context, evaluated domain.Trip) (domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trips[evaluated.ID]
	if !ok || !t.Open() ||
		t.DestinationLat != evaluated.DestinationLat ||
		t.DestinationLng != evaluated.DestinationLng ||
		t.RadiusMeters != evaluated.RadiusMeters {
		return domain.Trip{}, domain.ErrNotFound
	}
	return m.close(t, domain.CloseArrived), nil
}

func (m *memTripRepo) Reset(_ context.Context, userID string) (domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trips {
		if t.UserID == userID && t.Open() {
			return m.close(t, domain.CloseReset), nil
		}
	}
	return domain.Trip{}, domain.ErrNotFound
}

func (m *memTripRepo) ListByUser(_ context.Context, userID string) ([]domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byUser(userID), nil
}

// openCount returns how many open trips the user has.
func (m *memTripRepo) openCount(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.byUser(userID) {
		if t.Open() {
			n++
		}
	}
	return n
}

func (m *memTripRepo) close(t domain.Trip, reason string) domain.Trip {
	now := time.Now()
	t.Notified = true
	t.CloseReason = reason
	t.CompletedAt = &now
	m.trips[t.ID] = t
	return t
}

// byUser returns the user's trips newest first. Caller holds mu.
func (m *memTripRepo) byUser(userID string) []domain.Trip {
	var out []domain.Trip
	for _, t := range m.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

var _ repo.TripRepo = (*memTripRepo)(nil)

// movingTripRepo wraps memTripRepo and runs move once, right after the first
// GetCurrent returns. It simulates a SetDestination committing between an
// arrival check's read and its claim.
type movingTripRepo struct {
	*memTripRepo
	once sync.Once
	move func()
}

func (m *movingTripRepo) GetCurrent(ctx context.Context, userID string) (domain.Trip, error) {
	t, err := m.memTripRepo.GetCurrent(ctx, userID)
	m.once.Do(m.move)
	return t, err
}

var _ repo.TripRepo = (*movingTripRepo)(nil)

// mockNotificationRepo captures Record calls.
type mockNotificationRepo struct {
	mu       sync.Mutex
	recorded map[uuid.UUID][]domain.Delivery
	err      error
}

func (m *mockNotificationRepo) Record(_ context.Context, tripID uuid.UUID, ds []domain.Delivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recorded == nil {
		m.recorded = map[uuid.UUID][]domain.Delivery{}
	}
	m.recorded[tripID] = append(m.recorded[tripID], ds...)
	return m.err
}

func (m *mockNotificationRepo) ListByTrip(_ context.Context, _ uuid.UUID) ([]domain.Notification, error) {
	return nil, errors.New("not used")
}

var _ repo.NotificationRepo = (*mockNotificationRepo)(nil)

// fakeNotifier records every Send. Numbers listed in fail return an error.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []sentSMS
	fail  map[string]error
}

type sentSMS struct {
	To   string
	Body string
}

func (f *fakeNotifier) Send(_ context.Context, to, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sentSMS{To: to, Body: body})
	if err := f.fail[to]; err != nil {
		return "", err
	}
	return "SM" + to, nil
}

func (f *fakeNotifier) sent() []sentSMS {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentSMS(nil), f.calls...)
}

var _ service.Notifier = (*fakeNotifier)(nil)
