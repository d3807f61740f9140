package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler"
	"github.com/pkordes/safereach/backend/internal/handler/gen"
)

// ---- POST /trip/set-destination --------------------------------------------

func TestSetDestination_200_DefaultRadius(t *testing.T) {
	id := uuid.New()
	var got domain.Destination
	svc := &mockTripServicer{
		setDestination: func(_ context.Context, d domain.Destination) (domain.Trip, error) {
			got = d
			return domain.Trip{ID: id, UserID: d.UserID}, nil
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Trips: svc}), http.MethodPost, "/trip/set-destination",
		jsonBody(t, map[string]any{
			"user_id":         "alice",
			"destination_lat": 37.0,
			"destination_lng": -122.0,
			"contacts":        []string{"+15551234567"},
		}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(domain.DefaultRadiusMeters), got.RadiusMeters)
	assert.Equal(t, []string{"+15551234567"}, got.Contacts)

	body := decodeMap(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Destination set", body["message"])
	assert.Equal(t, id.String(), body["trip_id"])
}

func TestSetDestination_422_MissingCoordinates(t *testing.T) {
	svc := &mockTripServicer{}

	rec := do(newHTTPHandler(handler.Deps{Trips: svc}), http.MethodPost, "/trip/set-destination",
		jsonBody(t, map[string]any{"user_id": "alice", "destination_lat": 37.0}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

func TestSetDestination_422_ServiceValidation(t *testing.T) {
	svc := &mockTripServicer{
		setDestination: func(_ context.Context, _ domain.Destination) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: radius is out of range (gte 50)", domain.ErrValidation)
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Trips: svc}), http.MethodPost, "/trip/set-destination",
		jsonBody(t, map[string]any{"user_id": "a", "destination_lat": 1, "destination_lng": 1, "geofence_radius": 10}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp gen.ErrorResponse
	require.NoError(t, decodeInto(rec, &resp))
	assert.Equal(t, "radius is out of range (gte 50)", resp.Error.Message)
}

func TestSetDestination_400_MalformedJSON(t *testing.T) {
	rec := do(newHTTPHandler(handler.Deps{Trips: &mockTripServicer{}}), http.MethodPost,
		"/trip/set-destination", stringsReader(`{"user_id":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec))
}

func TestSetDestination_400_EmptyBody(t *testing.T) {
	rec := do(newHTTPHandler(handler.Deps{Trips: &mockTripServicer{}}), http.MethodPost,
		"/trip/set-destination", stringsReader(""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp gen.ErrorResponse
	require.NoError(t, decodeInto(rec, &resp))
	assert.Equal(t, "request body is required", resp.Error.Message)
}

func TestSetDestination_413_OversizedBody(t *testing.T) {
	h := handler.NewRouter(handler.NewServer(handler.Deps{Trips: &mockTripServicer{}}), handler.RouterOptions{
		RateLimitDisabled: true,
		MaxBodyBytes:      64,
	})
	payload := `{"user_id":"alice","contacts":["` + strings.Repeat("1", 200) + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/trip/set-destination", stringsReader(payload))
	req.ContentLength = -1 // streamed, so the limit trips while decoding
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "payload_too_large", errorCode(t, rec))
}

func TestSetDestination_500_HidesInternalError(t *testing.T) {
	svc := &mockTripServicer{
		setDestination: func(_ context.Context, _ domain.Destination) (domain.Trip, error) {
			return domain.Trip{}, errors.New("repo.TripRepo.UpsertOpen: connection refused")
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Trips: svc}), http.MethodPost, "/trip/set-destination",
		jsonBody(t, map[string]any{"user_id": "a", "destination_lat": 1, "destination_lng": 1}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

// ---- POST /trip/check-arrival ----------------------------------------------

func TestCheckArrival_200_Arrived(t *testing.T) {
	tripID := uuid.New()
	var gotLat, gotLng float64
	svc := &mockTripServicer{
		checkArrival: func(_ context.Context, _ string, lat, lng float64) (domain.ArrivalStatus, error) {
			gotLat, gotLng = lat, lng
			return domain.ArrivalStatus{
				TripID: tripID, Active: true, Arrived: true,
				DistanceMeters: 0, RadiusMeters: 500, NotificationsSent: true,
			}, nil
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Trips: svc}), http.MethodPost, "/trip/check-arrival",
		jsonBody(t, map[string]any{"user_id": "alice", "lat": 37.0, "lng": -122.0}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 37.0, gotLat)
	assert.Equal(t, -122.0, gotLng)

	var resp gen.ArrivalResponse
	require.NoError(t, decodeInto(rec, &resp))
	assert.True(t, resp.Ok)
	assert.True(t, resp.Arrived)
	require.NotNil(t, resp.UserId)
	assert.Equal(t, "alice", *resp.UserId)
	require.NotNil(t, resp.TripId)
	assert.Equal(t, tripID, *resp.TripId)
	require.NotNil(t, resp.NotificationsSent)
	assert.True(t, *resp.NotificationsSent)
	require.NotNil(t, resp.GeofenceRadius)
	assert.Equal(t, 500.0, *resp.GeofenceRadius)
	require.NotNil(t, resp.Distance, "a zero distance is still reported")
	assert.Zero(t, *resp.Distance)
}

func TestCheckArrival_200_NoActiveTrip(t *testing.T) {
	svc := &mockTripServicer{
		checkArrival: func(_ context.Context, _ string, _, _ float64) (domain.ArrivalStatus, error) {
			return domain.ArrivalStatus{}, nil
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Trips: svc}), http.MethodPost, "/trip/check-arrival",
		jsonBody(t, map[string]any{"user_id": "alice", "latitude": 1.0, "longitude": 2.0}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, false, body["arrived"])
	assert.Equal(t, "No active trip", body["message"])
}

func TestCheckArrival_400_MissingCoordinates(t *testing.T) {
	rec := do(newHTTPHandler(handler.Deps{Trips: &mockTripServicer{}}), http.MethodPost, "/trip/check-arrival",
		jsonBody(t, map[string]any{"user_id": "alice", "lat": 1.0}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- POST /trip/reset ------------------------------------------------------

func TestResetTrip_200(t *testing.T) {
	cases := []struct {
		reset bool
		want  string
	}{
		{true, "Trip reset"},
		{false, "No active trip found"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			svc := &mockTripServicer{
				resetTrip: func(_ context.Context, _ string) (bool, error) { return tc.reset, nil },
			}

			rec := do(newHTTPHandler(handler.Deps{Trips: svc}), http.MethodPost, "/trip/reset",
				jsonBody(t, map[string]any{"user_id": "alice"}))

			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeMap(t, rec)
			assert.Equal(t, true, body["ok"])
			assert.Equal(t, tc.want, body["message"])
		})
	}
}

// ---- GET /trips/{user_id} --------------------------------------------------

func TestListTrips_200(t *testing.T) {
	done := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	var gotUser string
	svc := &mockTripServicer{
		listTrips: func(_ context.Context, userID string) ([]domain.Trip, error) {
			gotUser = userID
			return []domain.Trip{
				{ID: uuid.New(), UserID: userID, RadiusMeters: 500},
				{ID: uuid.New(), UserID: userID, Notified: true, CloseReason: domain.CloseArrived, CompletedAt: &done},
			}, nil
		},
	}

	rec := do(newHTTPHandler(handler.Deps{Trips: svc}), http.MethodGet, "/trips/alice", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotUser)
	body := decodeMap(t, rec)
	assert.EqualValues(t, 2, body["count"])
	trips := body["trips"].([]any)
	assert.Equal(t, "arrived", trips[1].(map[string]any)["close_reason"])
}
