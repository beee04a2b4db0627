package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for itinerary days and
// the scheduled items within them.
type ItineraryRepo interface {
	// CreateDay inserts a new itinerary day.
	// Returns domain.ErrConflict if the trip already has a day for that date.
	CreateDay(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error)

	// GetDayByID retrieves a day by ID, scoped to the given trip.
	// Returns domain.ErrNotFound if no day with that ID exists under the trip.
	GetDayByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.ItineraryDay, error)

	// ListDays returns all days of a trip ordered by day_date ascending.
	ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error)

	// CreateItem inserts a new scheduled item into a day.
	CreateItem(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)

	// ListItems returns all items of a day ordered by sort_order, then
	// creation time, both ascending.
	ListItems(ctx context.Context, dayID uuid.UUID) ([]domain.ItineraryItem, error)
}

type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

func (r *pgItineraryRepo) CreateDay(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error) {
	const q = `
		INSERT INTO itinerary_days (trip_id, day_date, title, summary)
		VALUES (@trip_id, @day_date, @title, @summary)
		RETURNING id, trip_id, day_date, title, summary, created_at`

	args := pgx.NamedArgs{
		"trip_id":  day.TripID,
		"day_date": day.DayDate,
		"title":    day.Title,
		"summary":  day.Summary,
	}

	result, err := scanDay(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ItineraryDay{}, fmt.Errorf("repo.ItineraryRepo.CreateDay: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) GetDayByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.ItineraryDay, error) {
	const q = `
		SELECT id, trip_id, day_date, title, summary, created_at
		FROM itinerary_days
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanDay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": dayID, "trip_id": tripID}))
	if err != nil {
		return domain.ItineraryDay{}, fmt.Errorf("repo.ItineraryRepo.GetDayByID: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	const q = `
		SELECT id, trip_id, day_date, title, summary, created_at
		FROM itinerary_days
		WHERE trip_id = @trip_id
		ORDER BY day_date ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListDays: %w", err)
	}
	defer rows.Close()

	var days []domain.ItineraryDay
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListDays: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListDays: rows: %w", err)
	}
	return days, nil
}

func (r *pgItineraryRepo) CreateItem(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	const q = `
		INSERT INTO itinerary_items
			(day_id, item_type, title, start_time, end_time, activity_id, accommodation_id, details, sort_order)
		VALUES
			(@day_id, @item_type, @title, @start_time, @end_time, @activity_id, @accommodation_id, @details, @sort_order)
		RETURNING id, day_id, item_type, title, start_time, end_time,
		          activity_id, accommodation_id, details, sort_order, created_at`

	args := pgx.NamedArgs{
		"day_id":           item.DayID,
		"item_type":        item.ItemType,
		"title":            item.Title,
		"start_time":       item.StartTime,
		"end_time":         item.EndTime,
		"activity_id":      item.ActivityID,
		"accommodation_id": item.AccommodationID,
		"details":          item.Details,
		"sort_order":       item.SortOrder,
	}

	result, err := scanItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.CreateItem: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) ListItems(ctx context.Context, dayID uuid.UUID) ([]domain.ItineraryItem, error) {
	const q = `
		SELECT id, day_id, item_type, title, start_time, end_time,
		       activity_id, accommodation_id, details, sort_order, created_at
		FROM itinerary_items
		WHERE day_id = @day_id
		ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"day_id": dayID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListItems: %w", err)
	}
	defer rows.Close()

	var items []domain.ItineraryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListItems: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListItems: rows: %w", err)
	}
	return items, nil
}

// scanDay maps a single database row into a domain.ItineraryDay.
func scanDay(s scanner) (domain.ItineraryDay, error) {
	var (
		d       domain.ItineraryDay
		id      pgtype.UUID
		tripID  pgtype.UUID
		dayDate pgtype.Date
	)

	err := s.Scan(&id, &tripID, &dayDate, &d.Title, &d.Summary, &d.CreatedAt)
	if err != nil {
		return domain.ItineraryDay{}, mapError(err)
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.DayDate = dayDate.Time
	return d, nil
}

// scanItem maps a single database row into a domain.ItineraryItem.
func scanItem(s scanner) (domain.ItineraryItem, error) {
	var (
		it              domain.ItineraryItem
		id              pgtype.UUID
		dayID           pgtype.UUID
		activityID      pgtype.UUID
		accommodationID pgtype.UUID
	)

	err := s.Scan(&id, &dayID, &it.ItemType, &it.Title, &it.StartTime, &it.EndTime,
		&activityID, &accommodationID, &it.Details, &it.SortOrder, &it.CreatedAt)
	if err != nil {
		return domain.ItineraryItem{}, mapError(err)
	}

	it.ID = uuid.UUID(id.Bytes)
	it.DayID = uuid.UUID(dayID.Bytes)
	if activityID.Valid {
		aid := uuid.UUID(activityID.Bytes)
		it.ActivityID = &aid
	}
	if accommodationID.Valid {
		aid := uuid.UUID(accommodationID.Bytes)
		it.AccommodationID = &aid
	}
	return it, nil
}
