package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetCategory is a planned spending bucket for a trip, e.g. "Food" or
// "Transport". Category names are unique per trip. Deleting a category does
// not delete its expenses; their category reference is cleared instead.
type BudgetCategory struct {
	ID     uuid.UUID
	TripID uuid.UUID

	Name          string
	PlannedAmount decimal.Decimal
	Color         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BudgetCategoryPatch carries a partial category update.
// Nil fields are left untouched.
type BudgetCategoryPatch struct {
	Name          *string
	PlannedAmount *decimal.Decimal
	Color         *string
}

// BudgetExpense is an actual spend record for a trip, optionally attributed
// to a category. An expense survives the deletion of its category.
type BudgetExpense struct {
	ID         uuid.UUID
	TripID     uuid.UUID
	CategoryID *uuid.UUID

	Amount decimal.Decimal

	// CurrencyCode is the optional expense currency (ISO-4217, uppercase).
	// Nil means the trip currency is implied.
	CurrencyCode *string

	SpentOn     *time.Time // calendar date
	Description *string

	CreatedAt time.Time

	// CategoryName is denormalized for display: the current name of the
	// referenced category, nil when the expense is uncategorized or the
	// category has been deleted. Populated on reads, never stored.
	CategoryName *string
}

// BudgetTotals holds the trip-wide planned/actual/remaining figures.
// RemainingTotal may be negative; that means the trip is over budget.
type BudgetTotals struct {
	PlannedTotal   decimal.Decimal
	ActualTotal    decimal.Decimal
	RemainingTotal decimal.Decimal
}

// BudgetCategorySummary is one row of the per-category breakdown.
// A category with no expenses still appears, with ActualAmount zero.
type BudgetCategorySummary struct {
	ID              uuid.UUID
	Name            string
	PlannedAmount   decimal.Decimal
	ActualAmount    decimal.Decimal
	RemainingAmount decimal.Decimal
}

// BudgetSummary is the full planned-vs-actual picture for one trip.
// ByCategory is ordered by category creation time ascending.
type BudgetSummary struct {
	TripID     uuid.UUID
	Totals     BudgetTotals
	ByCategory []BudgetCategorySummary
}
