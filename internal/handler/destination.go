package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripweaver/backend/internal/domain"
)

type createDestinationRequest struct {
	Name      string              `json:"name"`
	Country   *string             `json:"country"`
	StartDate *openapi_types.Date `json:"start_date"`
	EndDate   *openapi_types.Date `json:"end_date"`
	SortOrder int                 `json:"sort_order"`
}

type destinationResponse struct {
	ID        uuid.UUID           `json:"id"`
	TripID    uuid.UUID           `json:"trip_id"`
	Name      string              `json:"name"`
	Country   *string             `json:"country"`
	StartDate *openapi_types.Date `json:"start_date"`
	EndDate   *openapi_types.Date `json:"end_date"`
	SortOrder int                 `json:"sort_order"`
	CreatedAt time.Time           `json:"created_at"`
}

// CreateDestination handles POST /trips/{tripID}/destinations.
func (s *Server) CreateDestination(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var req createDestinationRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.destinations.Create(r.Context(), domain.Destination{
		TripID:    tripID,
		Name:      req.Name,
		Country:   req.Country,
		StartDate: fromDate(req.StartDate),
		EndDate:   fromDate(req.EndDate),
		SortOrder: req.SortOrder,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, destinationToResponse(created))
}

// ListDestinations handles GET /trips/{tripID}/destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	dests, err := s.destinations.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	resp := make([]destinationResponse, len(dests))
	for i, d := range dests {
		resp[i] = destinationToResponse(d)
	}
	writeJSON(w, http.StatusOK, resp)
}

func destinationToResponse(d domain.Destination) destinationResponse {
	return destinationResponse{
		ID:        d.ID,
		TripID:    d.TripID,
		Name:      d.Name,
		Country:   d.Country,
		StartDate: toDate(d.StartDate),
		EndDate:   toDate(d.EndDate),
		SortOrder: d.SortOrder,
		CreatedAt: d.CreatedAt,
	}
}
