package handler

import (
	"context"
	"errors"

	"github.com/pkordes/safereach/backend/internal/domain"
	"github.com/pkordes/safereach/backend/internal/handler/gen"
	"github.com/pkordes/safereach/backend/internal/service"
)

// SetDestination handles POST /trip/set-destination.
// An omitted geofence_radius means 500 m.
func (s *Server) SetDestination(ctx context.Context, req gen.SetDestinationRequestObject) (gen.SetDestinationResponseObject, error) {
	dest, err := requestToDestination(req.Body)
	if err != nil {
		return gen.SetDestination422JSONResponse(fieldsBody(err.Error())), nil
	}

	trip, err := s.trips.SetDestination(ctx, dest)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.SetDestination422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.SetDestination200JSONResponse{
		Ok:      true,
		Message: "Destination set",
		UserId:  trip.UserID,
		TripId:  trip.ID,
	}, nil
}

// CheckArrival handles POST /trip/check-arrival.
// A user without a current trip gets ok=false and arrived=false with 200.
func (s *Server) CheckArrival(ctx context.Context, req gen.CheckArrivalRequestObject) (gen.CheckArrivalResponseObject, error) {
	lat, lng, ok := coords(req.Body)
	if !ok {
		return gen.CheckArrival400JSONResponse(requestBody("Missing latitude or longitude")), nil
	}

	status, err := s.trips.CheckArrival(ctx, req.Body.UserId, lat, lng)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CheckArrival422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	if !status.Active {
		msg := "No active trip"
		return gen.CheckArrival200JSONResponse{Ok: false, Message: &msg, Arrived: false}, nil
	}

	userID := service.SanitizeUserID(req.Body.UserId)
	return gen.CheckArrival200JSONResponse{
		Ok:                true,
		UserId:            &userID,
		TripId:            &status.TripID,
		Arrived:           status.Arrived,
		Distance:          &status.DistanceMeters,
		GeofenceRadius:    &status.RadiusMeters,
		NotificationsSent: &status.NotificationsSent,
	}, nil
}

// ResetTrip handles POST /trip/reset.
func (s *Server) ResetTrip(ctx context.Context, req gen.ResetTripRequestObject) (gen.ResetTripResponseObject, error) {
	reset, err := s.trips.ResetTrip(ctx, req.Body.UserId)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ResetTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	msg := "No active trip found"
	if reset {
		msg = "Trip reset"
	}
	return gen.ResetTrip200JSONResponse{
		Ok:      true,
		Message: msg,
		UserId:  service.SanitizeUserID(req.Body.UserId),
	}, nil
}

// ListTrips handles GET /trips/{user_id}: the user's trips, newest first.
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	userID := service.SanitizeUserID(req.UserId)

	trips, err := s.trips.ListTrips(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListTrips422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	data := make([]gen.Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return gen.ListTrips200JSONResponse{
		UserId: userID,
		Count:  len(data),
		Trips:  data,
	}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToDestination converts a SetDestinationRequest body into a
// domain.Destination. Returns an error if the coordinates are missing.
func requestToDestination(body *gen.SetDestinationRequest) (domain.Destination, error) {
	if body == nil {
		return domain.Destination{}, errors.New("request body is required")
	}
	if body.DestinationLat == nil || body.DestinationLng == nil {
		return domain.Destination{}, errors.New("destination_lat and destination_lng are required")
	}
	d := domain.Destination{
		UserID:       body.UserId,
		Lat:          *body.DestinationLat,
		Lng:          *body.DestinationLng,
		RadiusMeters: float64(domain.DefaultRadiusMeters),
	}
	if body.GeofenceRadius != nil {
		d.RadiusMeters = *body.GeofenceRadius
	}
	if body.Contacts != nil {
		d.Contacts = *body.Contacts
	}
	return d, nil
}

// tripToResponse converts a domain.Trip to the generated API response type.
func tripToResponse(t domain.Trip) gen.Trip {
	out := gen.Trip{
		Id:             t.ID,
		UserId:         t.UserID,
		DestinationLat: t.DestinationLat,
		DestinationLng: t.DestinationLng,
		GeofenceRadius: t.RadiusMeters,
		Contacts:       t.Contacts,
		Notified:       t.Notified,
		CreatedAt:      t.CreatedAt,
		CompletedAt:    t.CompletedAt,
	}
	if out.Contacts == nil {
		out.Contacts = []string{}
	}
	if t.CloseReason != "" {
		reason := t.CloseReason
		out.CloseReason = &reason
	}
	return out
}
