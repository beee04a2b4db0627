package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a city or region visited during a trip.
// Destinations are ordered within a trip by SortOrder ascending.
type Destination struct {
	ID     uuid.UUID
	TripID uuid.UUID

	Name      string
	Country   *string
	StartDate *time.Time
	EndDate   *time.Time
	SortOrder int

	CreatedAt time.Time
}
