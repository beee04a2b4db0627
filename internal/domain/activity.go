package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Activity is something planned during a trip, optionally pinned to a
// destination and/or an itinerary day. Both references are cleared, not
// cascaded, when their target is deleted.
type Activity struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	DestinationID *uuid.UUID
	DayID         *uuid.UUID

	Name       string
	StartTime  *time.Time
	EndTime    *time.Time
	Location   *string
	BookingURL *string
	Cost       *decimal.Decimal // estimated cost in the trip currency
	Notes      *string

	CreatedAt time.Time
}
