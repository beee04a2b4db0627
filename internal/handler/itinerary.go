package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripweaver/backend/internal/domain"
)

type createDayRequest struct {
	DayDate openapi_types.Date `json:"day_date"`
	Title   *string            `json:"title"`
	Summary *string            `json:"summary"`
}

type dayResponse struct {
	ID        uuid.UUID          `json:"id"`
	TripID    uuid.UUID          `json:"trip_id"`
	DayDate   openapi_types.Date `json:"day_date"`
	Title     *string            `json:"title"`
	Summary   *string            `json:"summary"`
	CreatedAt time.Time          `json:"created_at"`
}

type createItemRequest struct {
	ItemType        string     `json:"item_type"`
	Title           string     `json:"title"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	ActivityID      *uuid.UUID `json:"activity_id"`
	AccommodationID *uuid.UUID `json:"accommodation_id"`
	Details         *string    `json:"details"`
	SortOrder       int        `json:"sort_order"`
}

type itemResponse struct {
	ID              uuid.UUID  `json:"id"`
	DayID           uuid.UUID  `json:"day_id"`
	ItemType        string     `json:"item_type"`
	Title           string     `json:"title"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	ActivityID      *uuid.UUID `json:"activity_id"`
	AccommodationID *uuid.UUID `json:"accommodation_id"`
	Details         *string    `json:"details"`
	SortOrder       int        `json:"sort_order"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CreateItineraryDay handles POST /trips/{tripID}/itinerary/days.
func (s *Server) CreateItineraryDay(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var req createDayRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.itinerary.CreateDay(r.Context(), domain.ItineraryDay{
		TripID:  tripID,
		DayDate: req.DayDate.Time,
		Title:   req.Title,
		Summary: req.Summary,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, dayToResponse(created))
}

// ListItineraryDays handles GET /trips/{tripID}/itinerary/days.
func (s *Server) ListItineraryDays(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	days, err := s.itinerary.ListDays(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	resp := make([]dayResponse, len(days))
	for i, d := range days {
		resp[i] = dayToResponse(d)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateItineraryItem handles POST /trips/{tripID}/itinerary/days/{dayID}/items.
func (s *Server) CreateItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}
	dayID, ok := pathUUID(r, "dayID")
	if !ok {
		writeNotFound(w, "itinerary day not found")
		return
	}

	var req createItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.itinerary.CreateItem(r.Context(), tripID, domain.ItineraryItem{
		DayID:           dayID,
		ItemType:        req.ItemType,
		Title:           req.Title,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		ActivityID:      req.ActivityID,
		AccommodationID: req.AccommodationID,
		Details:         req.Details,
		SortOrder:       req.SortOrder,
	})
	if err != nil {
		writeError(w, err, itemNotFoundMessage(err))
		return
	}

	writeJSON(w, http.StatusCreated, itemToResponse(created))
}

// ListItineraryItems handles GET /trips/{tripID}/itinerary/days/{dayID}/items.
func (s *Server) ListItineraryItems(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}
	dayID, ok := pathUUID(r, "dayID")
	if !ok {
		writeNotFound(w, "itinerary day not found")
		return
	}

	items, err := s.itinerary.ListItems(r.Context(), tripID, dayID)
	if err != nil {
		writeError(w, err, "itinerary day not found")
		return
	}

	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = itemToResponse(it)
	}
	writeJSON(w, http.StatusOK, resp)
}

// itemNotFoundMessage picks the 404 message for item creation: the missing
// record may be the day itself or the referenced activity/accommodation.
// The service wraps the lookup that failed into the error text.
func itemNotFoundMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "activity:"):
		return "activity not found"
	case strings.Contains(msg, "accommodation:"):
		return "accommodation not found"
	}
	return "itinerary day not found"
}

func dayToResponse(d domain.ItineraryDay) dayResponse {
	return dayResponse{
		ID:        d.ID,
		TripID:    d.TripID,
		DayDate:   openapi_types.Date{Time: d.DayDate},
		Title:     d.Title,
		Summary:   d.Summary,
		CreatedAt: d.CreatedAt,
	}
}

func itemToResponse(it domain.ItineraryItem) itemResponse {
	return itemResponse{
		ID:              it.ID,
		DayID:           it.DayID,
		ItemType:        it.ItemType,
		Title:           it.Title,
		StartTime:       it.StartTime,
		EndTime:         it.EndTime,
		ActivityID:      it.ActivityID,
		AccommodationID: it.AccommodationID,
		Details:         it.Details,
		SortOrder:       it.SortOrder,
		CreatedAt:       it.CreatedAt,
	}
}
