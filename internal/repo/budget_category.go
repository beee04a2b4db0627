package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// BudgetCategoryRepo defines the persistence operations for budget categories.
type BudgetCategoryRepo interface {
	// Create inserts a new category. Returns domain.ErrConflict if the trip
	// already has a category with that name.
	Create(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error)

	// GetByID retrieves a category by ID, scoped to the given trip.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.BudgetCategory, error)

	// ListByTrip returns categories of a trip ordered by creation time ascending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategory, error)

	// Update overwrites the mutable fields of a category and returns the
	// updated record. Returns domain.ErrNotFound if the category is gone,
	// domain.ErrConflict if the new name collides within the trip.
	Update(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error)

	// Delete removes a category. Expenses referencing it are kept; the
	// schema clears their category_id. Returns domain.ErrNotFound if the
	// category does not exist under that trip.
	Delete(ctx context.Context, tripID, id uuid.UUID) error

	// NamesByIDs returns the names of the categories with the given IDs in
	// one query. Missing IDs (deleted categories) are simply absent from
	// the result map.
	NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type pgBudgetCategoryRepo struct {
	db db
}

// NewBudgetCategoryRepo constructs a BudgetCategoryRepo backed by the provided db connection.
func NewBudgetCategoryRepo(db db) BudgetCategoryRepo {
	return &pgBudgetCategoryRepo{db: db}
}

func (r *pgBudgetCategoryRepo) Create(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error) {
	const q = `
		INSERT INTO budget_categories (trip_id, name, planned_amount, color)
		VALUES (@trip_id, @name, @planned_amount, @color)
		RETURNING id, trip_id, name, planned_amount, color, created_at, updated_at`

	args := pgx.NamedArgs{
		"trip_id":        cat.TripID,
		"name":           cat.Name,
		"planned_amount": cat.PlannedAmount,
		"color":          cat.Color,
	}

	result, err := scanBudgetCategory(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("repo.BudgetCategoryRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgBudgetCategoryRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.BudgetCategory, error) {
	const q = `
		SELECT id, trip_id, name, planned_amount, color, created_at, updated_at
		FROM budget_categories
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanBudgetCategory(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "trip_id": tripID}))
	if err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("repo.BudgetCategoryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgBudgetCategoryRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategory, error) {
	const q = `
		SELECT id, trip_id, name, planned_amount, color, created_at, updated_at
		FROM budget_categories
		WHERE trip_id = @trip_id
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.BudgetCategoryRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var cats []domain.BudgetCategory
	for rows.Next() {
		c, err := scanBudgetCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BudgetCategoryRepo.ListByTrip: scan: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BudgetCategoryRepo.ListByTrip: rows: %w", err)
	}
	return cats, nil
}

func (r *pgBudgetCategoryRepo) Update(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error) {
	const q = `
		UPDATE budget_categories
		SET name           = @name,
		    planned_amount = @planned_amount,
		    color          = @color,
		    updated_at     = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, name, planned_amount, color, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":             cat.ID,
		"trip_id":        cat.TripID,
		"name":           cat.Name,
		"planned_amount": cat.PlannedAmount,
		"color":          cat.Color,
	}

	result, err := scanBudgetCategory(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("repo.BudgetCategoryRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgBudgetCategoryRepo) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	const q = `DELETE FROM budget_categories WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.BudgetCategoryRepo.Delete: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BudgetCategoryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgBudgetCategoryRepo) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	const q = `SELECT id, name FROM budget_categories WHERE id = ANY(@ids)`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.BudgetCategoryRepo.NamesByIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   pgtype.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("repo.BudgetCategoryRepo.NamesByIDs: scan: %w", err)
		}
		names[uuid.UUID(id.Bytes)] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BudgetCategoryRepo.NamesByIDs: rows: %w", err)
	}
	return names, nil
}

// scanBudgetCategory maps a single database row into a domain.BudgetCategory.
func scanBudgetCategory(s scanner) (domain.BudgetCategory, error) {
	var (
		c      domain.BudgetCategory
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &c.Name, &c.PlannedAmount, &c.Color,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.BudgetCategory{}, mapError(err)
	}

	c.ID = uuid.UUID(id.Bytes)
	c.TripID = uuid.UUID(tripID.Bytes)
	return c, nil
}
