package domain

import (
	"time"

	"github.com/google/uuid"
)

// Accommodation is a lodging entry for a trip, optionally pinned to one of
// the trip's destinations. The destination reference is cleared, not
// cascaded, when the destination is deleted.
type Accommodation struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	DestinationID *uuid.UUID

	Name               string
	Address            *string
	CheckIn            *time.Time
	CheckOut           *time.Time
	ConfirmationNumber *string
	BookingURL         *string
	Phone              *string
	Notes              *string

	CreatedAt time.Time
}
