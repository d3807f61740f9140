package handler_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler"
	"github.com/pkordes/safereach/backend/internal/handler/gen"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	setDestination func(ctx context.Context, dest domain.Destination) (domain.Trip, error)
	checkArrival   func(ctx context.Context, userID string, lat, lng float64) (domain.ArrivalStatus, error)
	resetTrip      func(ctx context.Context, userID string) (bool, error)
	listTrips      func(ctx context.Context, userID string) ([]domain.Trip, error)
}

func (m *mockTripServicer) SetDestination(ctx context.Context, d domain.Destination) (domain.Trip, error) {
	return m.setDestination(ctx, d)
}
func (m *mockTripServicer) CheckArrival(ctx context.Context, userID string, lat, lng float64) (domain.ArrivalStatus, error) {
	return m.checkArrival(ctx, userID, lat, lng)
}
func (m *mockTripServicer) ResetTrip(ctx context.Context, userID string) (bool, error) {
	return m.resetTrip(ctx, userID)
}
func (m *mockTripServicer) ListTrips(ctx context.Context, userID string) ([]domain.Trip, error) {
	return m.listTrips(ctx, userID)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockLocationServicer struct {
	record func(ctx context.Context, s domain.LocationSample) (domain.LocationSample, error)
	list   func(ctx context.Context, userID string, limit *int) ([]domain.LocationSample, error)
}

func (m *mockLocationServicer) Record(ctx context.Context, s domain.LocationSample) (domain.LocationSample, error) {
	return m.record(ctx, s)
}
func (m *mockLocationServicer) List(ctx context.Context, userID string, limit *int) ([]domain.LocationSample, error) {
	return m.list(ctx, userID, limit)
}

var _ handler.LocationServicer = (*mockLocationServicer)(nil)

type mockMessageServicer struct {
	send func(ctx context.Context, msg domain.Message) ([]domain.Delivery, error)
}

func (m *mockMessageServicer) Send(ctx context.Context, msg domain.Message) ([]domain.Delivery, error) {
	return m.send(ctx, msg)
}

type mockPlacesServicer struct {
	nearby func(ctx context.Context, q domain.PlaceQuery) ([]domain.Place, error)
}

func (m *mockPlacesServicer) Nearby(ctx context.Context, q domain.PlaceQuery) ([]domain.Place, error) {
	return m.nearby(ctx, q)
}

type mockRetentionServicer struct {
	purge func(ctx context.Context, days int) (domain.PurgeResult, error)
}

func (m *mockRetentionServicer) Purge(ctx context.Context, days int) (domain.PurgeResult, error) {
	return m.purge(ctx, days)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// ---- helpers ---------------------------------------------------------------

const testAPIKey = "test-admin-key"

// newHTTPHandler wires a Server with the given mocks into the full router.
// This mirrors how main.go wires it in production, minus rate limiting.
func newHTTPHandler(d handler.Deps) http.Handler {
	return handler.NewRouter(handler.NewServer(d), handler.RouterOptions{
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		CORSOrigins:       []string{"http://localhost:3000"},
		APIKeys:           []string{testAPIKey},
		OpenAPI:           []byte("openapi: 3.0.3\n"),
		RateLimitDisabled: true,
	})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends one request through h and returns the recorder.
func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	return m
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error.Code
}

func decodeInto(rec *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(rec.Body).Decode(v)
}

func stringsReader(s string) io.Reader {
	return bytes.NewBufferString(s)
}
