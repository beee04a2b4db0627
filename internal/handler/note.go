package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
)

type createNoteRequest struct {
	DestinationID *uuid.UUID `json:"destination_id"`
	DayID         *uuid.UUID `json:"day_id"`
	Title         *string    `json:"title"`
	Content       string     `json:"content"`
}

type noteResponse struct {
	ID            uuid.UUID  `json:"id"`
	TripID        uuid.UUID  `json:"trip_id"`
	DestinationID *uuid.UUID `json:"destination_id"`
	DayID         *uuid.UUID `json:"day_id"`
	Title         *string    `json:"title"`
	Content       string     `json:"content"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateNote handles POST /trips/{tripID}/notes.
func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var req createNoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.notes.Create(r.Context(), domain.Note{
		TripID:        tripID,
		DestinationID: req.DestinationID,
		DayID:         req.DayID,
		Title:         req.Title,
		Content:       req.Content,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, noteToResponse(created))
}

// ListNotes handles GET /trips/{tripID}/notes.
func (s *Server) ListNotes(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	notes, err := s.notes.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	resp := make([]noteResponse, len(notes))
	for i, n := range notes {
		resp[i] = noteToResponse(n)
	}
	writeJSON(w, http.StatusOK, resp)
}

func noteToResponse(n domain.Note) noteResponse {
	return noteResponse{
		ID:            n.ID,
		TripID:        n.TripID,
		DestinationID: n.DestinationID,
		DayID:         n.DayID,
		Title:         n.Title,
		Content:       n.Content,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}
