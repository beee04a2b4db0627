package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns trips ordered by creation time descending.
	// A non-nil userID restricts the result to trips owned by that user.
	List(ctx context.Context, userID *uuid.UUID) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound if the trip is gone.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. The schema cascades the delete to every
	// owned child row. Returns domain.ErrNotFound if the trip does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (user_id, name, start_date, end_date, home_timezone, currency_code)
		VALUES (@user_id, @name, @start_date, @end_date, @home_timezone, @currency_code)
		RETURNING id, user_id, name, start_date, end_date, home_timezone, currency_code,
		          created_at, updated_at`

	args := pgx.NamedArgs{
		"user_id":       trip.UserID,
		"name":          trip.Name,
		"start_date":    trip.StartDate, // nil becomes NULL
		"end_date":      trip.EndDate,
		"home_timezone": trip.HomeTimezone,
		"currency_code": trip.CurrencyCode,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT id, user_id, name, start_date, end_date, home_timezone, currency_code,
		       created_at, updated_at
		FROM trips
		WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) List(ctx context.Context, userID *uuid.UUID) ([]domain.Trip, error) {
	const q = `
		SELECT id, user_id, name, start_date, end_date, home_timezone, currency_code,
		       created_at, updated_at
		FROM trips
		WHERE @user_id::uuid IS NULL OR user_id = @user_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}
	return trips, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name          = @name,
		    start_date    = @start_date,
		    end_date      = @end_date,
		    home_timezone = @home_timezone,
		    currency_code = @currency_code,
		    updated_at    = now()
		WHERE id = @id
		RETURNING id, user_id, name, start_date, end_date, home_timezone, currency_code,
		          created_at, updated_at`

	args := pgx.NamedArgs{
		"id":            trip.ID,
		"name":          trip.Name,
		"start_date":    trip.StartDate,
		"end_date":      trip.EndDate,
		"home_timezone": trip.HomeTimezone,
		"currency_code": trip.CurrencyCode,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and nullable date conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		userID    pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&id, &userID, &t.Name, &startDate, &endDate,
		&t.HomeTimezone, &t.CurrencyCode, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Trip{}, mapError(err)
	}

	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	if startDate.Valid {
		sd := startDate.Time
		t.StartDate = &sd
	}
	if endDate.Valid {
		ed := endDate.Time
		t.EndDate = &ed
	}
	return t, nil
}
