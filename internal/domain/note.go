package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is a free-form note for a trip, optionally pinned to a destination
// and/or an itinerary day.
type Note struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	DestinationID *uuid.UUID
	DayID         *uuid.UUID

	Title   *string
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}
