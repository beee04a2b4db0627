package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the root aggregate owning all travel-planning data for one journey.
// Deleting a trip cascades deletion of every owned child (destinations, days,
// accommodations, activities, notes, budget categories and expenses).
type Trip struct {
	ID     uuid.UUID
	UserID uuid.UUID

	Name      string
	StartDate *time.Time // nil when not yet scheduled
	EndDate   *time.Time

	// HomeTimezone is an optional IANA timezone name, e.g. "Europe/Berlin".
	HomeTimezone *string

	// CurrencyCode is the trip-wide base currency (ISO-4217, uppercase).
	// Planned budgets are in this currency and expenses default to it.
	CurrencyCode string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TripPatch carries a partial trip update. Nil fields are left untouched.
type TripPatch struct {
	Name         *string
	StartDate    *time.Time
	EndDate      *time.Time
	HomeTimezone *string
	CurrencyCode *string
}
