package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tripweaver/backend/internal/domain"
)

type createActivityRequest struct {
	DestinationID *uuid.UUID       `json:"destination_id"`
	DayID         *uuid.UUID       `json:"day_id"`
	Name          string           `json:"name"`
	StartTime     *time.Time       `json:"start_time"`
	EndTime       *time.Time       `json:"end_time"`
	Location      *string          `json:"location"`
	BookingURL    *string          `json:"booking_url"`
	Cost          *decimal.Decimal `json:"cost"`
	Notes         *string          `json:"notes"`
}

type activityResponse struct {
	ID            uuid.UUID        `json:"id"`
	TripID        uuid.UUID        `json:"trip_id"`
	DestinationID *uuid.UUID       `json:"destination_id"`
	DayID         *uuid.UUID       `json:"day_id"`
	Name          string           `json:"name"`
	StartTime     *time.Time       `json:"start_time"`
	EndTime       *time.Time       `json:"end_time"`
	Location      *string          `json:"location"`
	BookingURL    *string          `json:"booking_url"`
	Cost          *decimal.Decimal `json:"cost"`
	Notes         *string          `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var req createActivityRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{
		TripID:        tripID,
		DestinationID: req.DestinationID,
		DayID:         req.DayID,
		Name:          req.Name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		BookingURL:    req.BookingURL,
		Cost:          req.Cost,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// ListActivities handles GET /trips/{tripID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	acts, err := s.activities.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	resp := make([]activityResponse, len(acts))
	for i, a := range acts {
		resp[i] = activityToResponse(a)
	}
	writeJSON(w, http.StatusOK, resp)
}

func activityToResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:            a.ID,
		TripID:        a.TripID,
		DestinationID: a.DestinationID,
		DayID:         a.DayID,
		Name:          a.Name,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Location:      a.Location,
		BookingURL:    a.BookingURL,
		Cost:          a.Cost,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
	}
}
