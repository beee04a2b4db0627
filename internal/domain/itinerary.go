package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryDay is a dated day within a trip itinerary.
// At most one day row may exist per calendar date per trip.
type ItineraryDay struct {
	ID     uuid.UUID
	TripID uuid.UUID

	DayDate time.Time // calendar date, time component ignored
	Title   *string
	Summary *string

	CreatedAt time.Time
}

// Itinerary item types. An item either references an existing activity or
// accommodation, or is a free-form custom entry.
const (
	ItemTypeActivity      = "activity"
	ItemTypeAccommodation = "accommodation"
	ItemTypeCustom        = "custom"
)

// ItineraryItem is a scheduled entry within one itinerary day.
// At most one of ActivityID and AccommodationID is populated, and the
// populated reference must match ItemType. References are cleared, not
// cascaded, when the target activity or accommodation is deleted.
type ItineraryItem struct {
	ID    uuid.UUID
	DayID uuid.UUID

	ItemType  string
	Title     string
	StartTime *time.Time
	EndTime   *time.Time

	ActivityID      *uuid.UUID
	AccommodationID *uuid.UUID

	Details   *string
	SortOrder int

	CreatedAt time.Time
}
