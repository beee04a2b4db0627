package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tripweaver/backend/internal/domain"
)

// BudgetSummaryRepo defines the aggregation queries behind the budget summary.
type BudgetSummaryRepo interface {
	// Totals returns the trip-wide planned and actual sums. Trips without
	// categories or expenses yield zero totals, not an error.
	Totals(ctx context.Context, tripID uuid.UUID) (planned, actual decimal.Decimal, err error)

	// CategoryBreakdown returns one row per budget category of the trip with
	// the summed actual spend attributed to it, ordered by category creation
	// time ascending. Categories with no expenses appear with a zero
	// ActualAmount; the join is a left outer join, never an inner join.
	// RemainingAmount is left for the caller to derive.
	CategoryBreakdown(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategorySummary, error)
}

type pgBudgetSummaryRepo struct {
	db db
}

// NewBudgetSummaryRepo constructs a BudgetSummaryRepo backed by the provided db connection.
func NewBudgetSummaryRepo(db db) BudgetSummaryRepo {
	return &pgBudgetSummaryRepo{db: db}
}

func (r *pgBudgetSummaryRepo) Totals(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	const q = `
		SELECT
			(SELECT COALESCE(SUM(planned_amount), 0) FROM budget_categories WHERE trip_id = @trip_id),
			(SELECT COALESCE(SUM(amount), 0)         FROM budget_expenses  WHERE trip_id = @trip_id)`

	var planned, actual decimal.Decimal
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}).Scan(&planned, &actual)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("repo.BudgetSummaryRepo.Totals: %w", mapError(err))
	}
	return planned, actual, nil
}

func (r *pgBudgetSummaryRepo) CategoryBreakdown(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategorySummary, error) {
	const q = `
		SELECT c.id, c.name, c.planned_amount, COALESCE(SUM(e.amount), 0) AS actual_amount
		FROM budget_categories c
		LEFT JOIN budget_expenses e ON e.category_id = c.id
		WHERE c.trip_id = @trip_id
		GROUP BY c.id, c.name, c.planned_amount, c.created_at
		ORDER BY c.created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.BudgetSummaryRepo.CategoryBreakdown: %w", err)
	}
	defer rows.Close()

	var out []domain.BudgetCategorySummary
	for rows.Next() {
		var (
			row domain.BudgetCategorySummary
			id  pgtype.UUID
		)
		if err := rows.Scan(&id, &row.Name, &row.PlannedAmount, &row.ActualAmount); err != nil {
			return nil, fmt.Errorf("repo.BudgetSummaryRepo.CategoryBreakdown: scan: %w", err)
		}
		row.ID = uuid.UUID(id.Bytes)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BudgetSummaryRepo.CategoryBreakdown: rows: %w", err)
	}
	return out, nil
}
