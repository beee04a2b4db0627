package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// AccommodationRepo defines the persistence operations for accommodations.
type AccommodationRepo interface {
	// Create inserts a new accommodation and returns the persisted record.
	Create(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error)

	// GetByID retrieves an accommodation by ID, scoped to the given trip.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Accommodation, error)

	// ListByTrip returns accommodations of a trip ordered by creation time descending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error)
}

type pgAccommodationRepo struct {
	db db
}

// NewAccommodationRepo constructs an AccommodationRepo backed by the provided db connection.
func NewAccommodationRepo(db db) AccommodationRepo {
	return &pgAccommodationRepo{db: db}
}

func (r *pgAccommodationRepo) Create(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error) {
	const q = `
		INSERT INTO accommodations
			(trip_id, destination_id, name, address, check_in, check_out,
			 confirmation_number, booking_url, phone, notes)
		VALUES
			(@trip_id, @destination_id, @name, @address, @check_in, @check_out,
			 @confirmation_number, @booking_url, @phone, @notes)
		RETURNING id, trip_id, destination_id, name, address, check_in, check_out,
		          confirmation_number, booking_url, phone, notes, created_at`

	args := pgx.NamedArgs{
		"trip_id":             acc.TripID,
		"destination_id":      acc.DestinationID,
		"name":                acc.Name,
		"address":             acc.Address,
		"check_in":            acc.CheckIn,
		"check_out":           acc.CheckOut,
		"confirmation_number": acc.ConfirmationNumber,
		"booking_url":         acc.BookingURL,
		"phone":               acc.Phone,
		"notes":               acc.Notes,
	}

	result, err := scanAccommodation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("repo.AccommodationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgAccommodationRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Accommodation, error) {
	const q = `
		SELECT id, trip_id, destination_id, name, address, check_in, check_out,
		       confirmation_number, booking_url, phone, notes, created_at
		FROM accommodations
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanAccommodation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "trip_id": tripID}))
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("repo.AccommodationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgAccommodationRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error) {
	const q = `
		SELECT id, trip_id, destination_id, name, address, check_in, check_out,
		       confirmation_number, booking_url, phone, notes, created_at
		FROM accommodations
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.AccommodationRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var accs []domain.Accommodation
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.AccommodationRepo.ListByTrip: scan: %w", err)
		}
		accs = append(accs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AccommodationRepo.ListByTrip: rows: %w", err)
	}
	return accs, nil
}

// scanAccommodation maps a single database row into a domain.Accommodation.
func scanAccommodation(s scanner) (domain.Accommodation, error) {
	var (
		a      domain.Accommodation
		id     pgtype.UUID
		tripID pgtype.UUID
		destID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &destID, &a.Name, &a.Address, &a.CheckIn, &a.CheckOut,
		&a.ConfirmationNumber, &a.BookingURL, &a.Phone, &a.Notes, &a.CreatedAt)
	if err != nil {
		return domain.Accommodation{}, mapError(err)
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	if destID.Valid {
		did := uuid.UUID(destID.Bytes)
		a.DestinationID = &did
	}
	return a, nil
}
