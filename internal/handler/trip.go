package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripweaver/backend/internal/domain"
)

type createTripRequest struct {
	UserID       uuid.UUID           `json:"user_id"`
	Name         string              `json:"name"`
	StartDate    *openapi_types.Date `json:"start_date"`
	EndDate      *openapi_types.Date `json:"end_date"`
	HomeTimezone *string             `json:"home_timezone"`
	CurrencyCode *string             `json:"currency_code"`
}

type updateTripRequest struct {
	Name         *string             `json:"name"`
	StartDate    *openapi_types.Date `json:"start_date"`
	EndDate      *openapi_types.Date `json:"end_date"`
	HomeTimezone *string             `json:"home_timezone"`
	CurrencyCode *string             `json:"currency_code"`
}

type tripResponse struct {
	ID           uuid.UUID           `json:"id"`
	UserID       uuid.UUID           `json:"user_id"`
	Name         string              `json:"name"`
	StartDate    *openapi_types.Date `json:"start_date"`
	EndDate      *openapi_types.Date `json:"end_date"`
	HomeTimezone *string             `json:"home_timezone"`
	CurrencyCode string              `json:"currency_code"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	trip := domain.Trip{
		UserID:       req.UserID,
		Name:         req.Name,
		StartDate:    fromDate(req.StartDate),
		EndDate:      fromDate(req.EndDate),
		HomeTimezone: req.HomeTimezone,
	}
	if req.CurrencyCode != nil {
		trip.CurrencyCode = *req.CurrencyCode
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err, "user not found")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips. The optional ?user_id= query parameter
// restricts the result to trips owned by that user.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var userID *uuid.UUID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeBadRequest(w, "user_id must be a valid UUID")
			return
		}
		userID = &id
	}

	trips, err := s.trips.List(r.Context(), userID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	resp := make([]tripResponse, len(trips))
	for i, t := range trips {
		resp[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PATCH /trips/{tripID}.
// Only the fields present in the body are changed.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var req updateTripRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := s.trips.Update(r.Context(), id, domain.TripPatch{
		Name:         req.Name,
		StartDate:    fromDate(req.StartDate),
		EndDate:      fromDate(req.EndDate),
		HomeTimezone: req.HomeTimezone,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
// The delete cascades to every child entity of the trip.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Trip deleted"})
}

func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		Name:         t.Name,
		StartDate:    toDate(t.StartDate),
		EndDate:      toDate(t.EndDate),
		HomeTimezone: t.HomeTimezone,
		CurrencyCode: t.CurrencyCode,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
