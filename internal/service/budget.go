package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// BudgetService implements the budget tracker: planned categories, actual
// expenses, and the planned-vs-actual summary. The summary is the one
// derived computation in the system; everything else is validated CRUD.
type BudgetService struct {
	trips   repo.TripRepo
	cats    repo.BudgetCategoryRepo
	exps    repo.BudgetExpenseRepo
	summary repo.BudgetSummaryRepo
}

// NewBudgetService constructs a BudgetService backed by the provided repos.
func NewBudgetService(trips repo.TripRepo, cats repo.BudgetCategoryRepo, exps repo.BudgetExpenseRepo, summary repo.BudgetSummaryRepo) *BudgetService {
	return &BudgetService{trips: trips, cats: cats, exps: exps, summary: summary}
}

// --- categories -------------------------------------------------------------

// CreateCategory verifies the parent trip exists, validates, then persists.
// Returns domain.ErrConflict if the trip already has a category by that name.
func (s *BudgetService) CreateCategory(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error) {
	if _, err := s.trips.GetByID(ctx, cat.TripID); err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("service.BudgetService.CreateCategory: %w", err)
	}
	if err := validateCategory(cat); err != nil {
		return domain.BudgetCategory{}, err
	}

	result, err := s.cats.Create(ctx, cat)
	if err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("service.BudgetService.CreateCategory: %w", err)
	}
	return result, nil
}

// ListCategories returns the trip's categories in creation order.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *BudgetService) ListCategories(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategory, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.BudgetService.ListCategories: %w", err)
	}
	cats, err := s.cats.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.BudgetService.ListCategories: %w", err)
	}
	if cats == nil {
		return []domain.BudgetCategory{}, nil
	}
	return cats, nil
}

// UpdateCategory applies a partial update: only the fields set on the patch
// are changed. Returns domain.ErrNotFound if the trip or category is missing,
// domain.ErrConflict if the new name collides within the trip.
func (s *BudgetService) UpdateCategory(ctx context.Context, tripID, catID uuid.UUID, patch domain.BudgetCategoryPatch) (domain.BudgetCategory, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("service.BudgetService.UpdateCategory: %w", err)
	}
	cat, err := s.cats.GetByID(ctx, tripID, catID)
	if err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("service.BudgetService.UpdateCategory: %w", err)
	}

	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.PlannedAmount != nil {
		cat.PlannedAmount = *patch.PlannedAmount
	}
	if patch.Color != nil {
		cat.Color = patch.Color
	}
	if err := validateCategory(cat); err != nil {
		return domain.BudgetCategory{}, err
	}

	result, err := s.cats.Update(ctx, cat)
	if err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("service.BudgetService.UpdateCategory: %w", err)
	}
	return result, nil
}

// DeleteCategory removes a category. Its expenses are kept and become
// uncategorized; only a trip delete cascades.
func (s *BudgetService) DeleteCategory(ctx context.Context, tripID, catID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return fmt.Errorf("service.BudgetService.DeleteCategory: %w", err)
	}
	if err := s.cats.Delete(ctx, tripID, catID); err != nil {
		return fmt.Errorf("service.BudgetService.DeleteCategory: %w", err)
	}
	return nil
}

// --- expenses ---------------------------------------------------------------

// CreateExpense verifies the parent trip (and, when categorized, that the
// category belongs to the same trip), validates, persists, and returns the
// expense with its denormalized category name attached.
func (s *BudgetService) CreateExpense(ctx context.Context, exp domain.BudgetExpense) (domain.BudgetExpense, error) {
	if _, err := s.trips.GetByID(ctx, exp.TripID); err != nil {
		return domain.BudgetExpense{}, fmt.Errorf("service.BudgetService.CreateExpense: %w", err)
	}

	var categoryName *string
	if exp.CategoryID != nil {
		cat, err := s.cats.GetByID(ctx, exp.TripID, *exp.CategoryID)
		if err != nil {
			return domain.BudgetExpense{}, fmt.Errorf("service.BudgetService.CreateExpense: category: %w", err)
		}
		categoryName = &cat.Name
	}

	if !exp.Amount.IsPositive() {
		return domain.BudgetExpense{}, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if exp.CurrencyCode != nil {
		code, err := normalizeCurrency(*exp.CurrencyCode)
		if err != nil {
			return domain.BudgetExpense{}, err
		}
		exp.CurrencyCode = &code
	}

	result, err := s.exps.Create(ctx, exp)
	if err != nil {
		return domain.BudgetExpense{}, fmt.Errorf("service.BudgetService.CreateExpense: %w", err)
	}
	result.CategoryName = categoryName
	return result, nil
}

// ListExpenses returns the trip's expenses, newest first, with category
// names attached. The names come from a single batch lookup over the
// distinct category ids, one extra query regardless of how many expenses
// there are.
func (s *BudgetService) ListExpenses(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetExpense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.BudgetService.ListExpenses: %w", err)
	}
	exps, err := s.exps.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.BudgetService.ListExpenses: %w", err)
	}

	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, e := range exps {
		if e.CategoryID != nil && !seen[*e.CategoryID] {
			seen[*e.CategoryID] = true
			ids = append(ids, *e.CategoryID)
		}
	}

	names := map[uuid.UUID]string{}
	if len(ids) > 0 {
		names, err = s.cats.NamesByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("service.BudgetService.ListExpenses: %w", err)
		}
	}

	out := make([]domain.BudgetExpense, len(exps))
	for i, e := range exps {
		if e.CategoryID != nil {
			if name, ok := names[*e.CategoryID]; ok {
				n := name
				e.CategoryName = &n
			}
		}
		out[i] = e
	}
	return out, nil
}

// DeleteExpense removes an expense entry.
func (s *BudgetService) DeleteExpense(ctx context.Context, tripID, expID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return fmt.Errorf("service.BudgetService.DeleteExpense: %w", err)
	}
	if err := s.exps.Delete(ctx, tripID, expID); err != nil {
		return fmt.Errorf("service.BudgetService.DeleteExpense: %w", err)
	}
	return nil
}

// --- summary ----------------------------------------------------------------

// Summary computes the planned-vs-actual picture for one trip.
// Remaining figures are planned minus actual and may be negative; over
// budget is a state, not an error. Categories with no expenses still appear
// in the breakdown with a zero actual amount.
func (s *BudgetService) Summary(ctx context.Context, tripID uuid.UUID) (domain.BudgetSummary, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}

	planned, actual, err := s.summary.Totals(ctx, tripID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}

	rows, err := s.summary.CategoryBreakdown(ctx, tripID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}

	byCategory := make([]domain.BudgetCategorySummary, len(rows))
	for i, row := range rows {
		row.RemainingAmount = row.PlannedAmount.Sub(row.ActualAmount)
		byCategory[i] = row
	}

	return domain.BudgetSummary{
		TripID: tripID,
		Totals: domain.BudgetTotals{
			PlannedTotal:   planned,
			ActualTotal:    actual,
			RemainingTotal: planned.Sub(actual),
		},
		ByCategory: byCategory,
	}, nil
}

// validateCategory enforces rules common to category create and update.
func validateCategory(cat domain.BudgetCategory) error {
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if cat.PlannedAmount.IsNegative() {
		return fmt.Errorf("%w: planned_amount must not be negative", domain.ErrValidation)
	}
	return nil
}
