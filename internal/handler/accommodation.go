package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
)

type createAccommodationRequest struct {
	DestinationID      *uuid.UUID `json:"destination_id"`
	Name               string     `json:"name"`
	Address            *string    `json:"address"`
	CheckIn            *time.Time `json:"check_in"`
	CheckOut           *time.Time `json:"check_out"`
	ConfirmationNumber *string    `json:"confirmation_number"`
	BookingURL         *string    `json:"booking_url"`
	Phone              *string    `json:"phone"`
	Notes              *string    `json:"notes"`
}

type accommodationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	TripID             uuid.UUID  `json:"trip_id"`
	DestinationID      *uuid.UUID `json:"destination_id"`
	Name               string     `json:"name"`
	Address            *string    `json:"address"`
	CheckIn            *time.Time `json:"check_in"`
	CheckOut           *time.Time `json:"check_out"`
	ConfirmationNumber *string    `json:"confirmation_number"`
	BookingURL         *string    `json:"booking_url"`
	Phone              *string    `json:"phone"`
	Notes              *string    `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CreateAccommodation handles POST /trips/{tripID}/accommodations.
func (s *Server) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var req createAccommodationRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.accommodations.Create(r.Context(), domain.Accommodation{
		TripID:             tripID,
		DestinationID:      req.DestinationID,
		Name:               req.Name,
		Address:            req.Address,
		CheckIn:            req.CheckIn,
		CheckOut:           req.CheckOut,
		ConfirmationNumber: req.ConfirmationNumber,
		BookingURL:         req.BookingURL,
		Phone:              req.Phone,
		Notes:              req.Notes,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, accommodationToResponse(created))
}

// ListAccommodations handles GET /trips/{tripID}/accommodations.
func (s *Server) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	accs, err := s.accommodations.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	resp := make([]accommodationResponse, len(accs))
	for i, a := range accs {
		resp[i] = accommodationToResponse(a)
	}
	writeJSON(w, http.StatusOK, resp)
}

func accommodationToResponse(a domain.Accommodation) accommodationResponse {
	return accommodationResponse{
		ID:                 a.ID,
		TripID:             a.TripID,
		DestinationID:      a.DestinationID,
		Name:               a.Name,
		Address:            a.Address,
		CheckIn:            a.CheckIn,
		CheckOut:           a.CheckOut,
		ConfirmationNumber: a.ConfirmationNumber,
		BookingURL:         a.BookingURL,
		Phone:              a.Phone,
		Notes:              a.Notes,
		CreatedAt:          a.CreatedAt,
	}
}
