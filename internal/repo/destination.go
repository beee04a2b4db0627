package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// DestinationRepo defines the persistence operations for trip destinations.
type DestinationRepo interface {
	// Create inserts a new destination and returns the persisted record.
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// ListByTrip returns all destinations of a trip ordered by sort_order ascending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
}

type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

func (r *pgDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO trip_destinations (trip_id, name, country, start_date, end_date, sort_order)
		VALUES (@trip_id, @name, @country, @start_date, @end_date, @sort_order)
		RETURNING id, trip_id, name, country, start_date, end_date, sort_order, created_at`

	args := pgx.NamedArgs{
		"trip_id":    dest.TripID,
		"name":       dest.Name,
		"country":    dest.Country,
		"start_date": dest.StartDate,
		"end_date":   dest.EndDate,
		"sort_order": dest.SortOrder,
	}

	result, err := scanDestination(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	const q = `
		SELECT id, trip_id, name, country, start_date, end_date, sort_order, created_at
		FROM trip_destinations
		WHERE trip_id = @trip_id
		ORDER BY sort_order ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.ListByTrip: scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTrip: rows: %w", err)
	}
	return dests, nil
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d         domain.Destination
		id        pgtype.UUID
		tripID    pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&id, &tripID, &d.Name, &d.Country, &startDate, &endDate,
		&d.SortOrder, &d.CreatedAt)
	if err != nil {
		return domain.Destination{}, mapError(err)
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	if startDate.Valid {
		sd := startDate.Time
		d.StartDate = &sd
	}
	if endDate.Valid {
		ed := endDate.Time
		d.EndDate = &ed
	}
	return d, nil
}
