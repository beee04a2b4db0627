package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// BudgetExpenseRepo defines the persistence operations for budget expenses.
type BudgetExpenseRepo interface {
	// Create inserts a new expense and returns the persisted record.
	Create(ctx context.Context, exp domain.BudgetExpense) (domain.BudgetExpense, error)

	// GetByID retrieves an expense by ID, scoped to the given trip.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.BudgetExpense, error)

	// ListByTrip returns expenses of a trip ordered by creation time descending.
	// CategoryName is not populated here; the service attaches it in one
	// batch lookup per list.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetExpense, error)

	// Delete removes an expense. Returns domain.ErrNotFound if it does not
	// exist under that trip.
	Delete(ctx context.Context, tripID, id uuid.UUID) error
}

type pgBudgetExpenseRepo struct {
	db db
}

// NewBudgetExpenseRepo constructs a BudgetExpenseRepo backed by the provided db connection.
func NewBudgetExpenseRepo(db db) BudgetExpenseRepo {
	return &pgBudgetExpenseRepo{db: db}
}

func (r *pgBudgetExpenseRepo) Create(ctx context.Context, exp domain.BudgetExpense) (domain.BudgetExpense, error) {
	const q = `
		INSERT INTO budget_expenses (trip_id, category_id, amount, currency_code, spent_on, description)
		VALUES (@trip_id, @category_id, @amount, @currency_code, @spent_on, @description)
		RETURNING id, trip_id, category_id, amount, currency_code, spent_on, description, created_at`

	args := pgx.NamedArgs{
		"trip_id":       exp.TripID,
		"category_id":   exp.CategoryID,
		"amount":        exp.Amount,
		"currency_code": exp.CurrencyCode,
		"spent_on":      exp.SpentOn,
		"description":   exp.Description,
	}

	result, err := scanBudgetExpense(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.BudgetExpense{}, fmt.Errorf("repo.BudgetExpenseRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgBudgetExpenseRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.BudgetExpense, error) {
	const q = `
		SELECT id, trip_id, category_id, amount, currency_code, spent_on, description, created_at
		FROM budget_expenses
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanBudgetExpense(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "trip_id": tripID}))
	if err != nil {
		return domain.BudgetExpense{}, fmt.Errorf("repo.BudgetExpenseRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgBudgetExpenseRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetExpense, error) {
	const q = `
		SELECT id, trip_id, category_id, amount, currency_code, spent_on, description, created_at
		FROM budget_expenses
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.BudgetExpenseRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var exps []domain.BudgetExpense
	for rows.Next() {
		e, err := scanBudgetExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BudgetExpenseRepo.ListByTrip: scan: %w", err)
		}
		exps = append(exps, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BudgetExpenseRepo.ListByTrip: rows: %w", err)
	}
	return exps, nil
}

func (r *pgBudgetExpenseRepo) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	const q = `DELETE FROM budget_expenses WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.BudgetExpenseRepo.Delete: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BudgetExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanBudgetExpense maps a single database row into a domain.BudgetExpense.
func scanBudgetExpense(s scanner) (domain.BudgetExpense, error) {
	var (
		e       domain.BudgetExpense
		id      pgtype.UUID
		tripID  pgtype.UUID
		catID   pgtype.UUID
		spentOn pgtype.Date
	)

	err := s.Scan(&id, &tripID, &catID, &e.Amount, &e.CurrencyCode,
		&spentOn, &e.Description, &e.CreatedAt)
	if err != nil {
		return domain.BudgetExpense{}, mapError(err)
	}

	e.ID = uuid.UUID(id.Bytes)
	e.TripID = uuid.UUID(tripID.Bytes)
	if catID.Valid {
		cid := uuid.UUID(catID.Bytes)
		e.CategoryID = &cid
	}
	if spentOn.Valid {
		so := spentOn.Time
		e.SpentOn = &so
	}
	return e, nil
}
