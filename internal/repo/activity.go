package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// ActivityRepo defines the persistence operations for activities.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// GetByID retrieves an activity by ID, scoped to the given trip.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error)

	// ListByTrip returns activities of a trip ordered by creation time descending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

func (r *pgActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities
			(trip_id, destination_id, day_id, name, start_time, end_time,
			 location, booking_url, cost, notes)
		VALUES
			(@trip_id, @destination_id, @day_id, @name, @start_time, @end_time,
			 @location, @booking_url, @cost, @notes)
		RETURNING id, trip_id, destination_id, day_id, name, start_time, end_time,
		          location, booking_url, cost, notes, created_at`

	args := pgx.NamedArgs{
		"trip_id":        act.TripID,
		"destination_id": act.DestinationID,
		"day_id":         act.DayID,
		"name":           act.Name,
		"start_time":     act.StartTime,
		"end_time":       act.EndTime,
		"location":       act.Location,
		"booking_url":    act.BookingURL,
		"cost":           act.Cost,
		"notes":          act.Notes,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error) {
	const q = `
		SELECT id, trip_id, destination_id, day_id, name, start_time, end_time,
		       location, booking_url, cost, notes, created_at
		FROM activities
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "trip_id": tripID}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT id, trip_id, destination_id, day_id, name, start_time, end_time,
		       location, booking_url, cost, notes, created_at
		FROM activities
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var acts []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTrip: scan: %w", err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTrip: rows: %w", err)
	}
	return acts, nil
}

// scanActivity maps a single database row into a domain.Activity.
// The cost column scans directly into *decimal.Decimal via the
// pgx-shopspring-decimal codec registered on the connection.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a      domain.Activity
		id     pgtype.UUID
		tripID pgtype.UUID
		destID pgtype.UUID
		dayID  pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &destID, &dayID, &a.Name, &a.StartTime, &a.EndTime,
		&a.Location, &a.BookingURL, &a.Cost, &a.Notes, &a.CreatedAt)
	if err != nil {
		return domain.Activity{}, mapError(err)
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	if destID.Valid {
		did := uuid.UUID(destID.Bytes)
		a.DestinationID = &did
	}
	if dayID.Valid {
		did := uuid.UUID(dayID.Bytes)
		a.DayID = &did
	}
	return a, nil
}
