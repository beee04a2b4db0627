package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/service"
)

// echoCategoryRepo echoes category writes back and resolves lookups.
func echoCategoryRepo() *mockBudgetCategoryRepo {
	return &mockBudgetCategoryRepo{
		create: func(_ context.Context, c domain.BudgetCategory) (domain.BudgetCategory, error) {
			return c, nil
		},
		update: func(_ context.Context, c domain.BudgetCategory) (domain.BudgetCategory, error) {
			return c, nil
		},
		getByID: func(_ context.Context, tripID, id uuid.UUID) (domain.BudgetCategory, error) {
			return domain.BudgetCategory{ID: id, TripID: tripID, Name: "Food"}, nil
		},
	}
}

func echoExpenseRepo() *mockBudgetExpenseRepo {
	return &mockBudgetExpenseRepo{
		create: func(_ context.Context, e domain.BudgetExpense) (domain.BudgetExpense, error) {
			return e, nil
		},
	}
}

func noSummary() *mockBudgetSummaryRepo {
	return &mockBudgetSummaryRepo{}
}

func TestBudgetService_CreateCategory_Valid(t *testing.T) {
	svc := service.NewBudgetService(tripExists(), echoCategoryRepo(), echoExpenseRepo(), noSummary())

	got, err := svc.CreateCategory(context.Background(), domain.BudgetCategory{
		TripID:        uuid.New(),
		Name:          "Food",
		PlannedAmount: decimal.RequireFromString("300"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Food", got.Name)
}

func TestBudgetService_CreateCategory_MissingName(t *testing.T) {
	svc := service.NewBudgetService(tripExists(), echoCategoryRepo(), echoExpenseRepo(), noSummary())

	_, err := svc.CreateCategory(context.Background(), domain.BudgetCategory{
		TripID: uuid.New(),
		Name:   "  ",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBudgetService_CreateCategory_NegativePlanned(t *testing.T) {
	svc := service.NewBudgetService(tripExists(), echoCategoryRepo(), echoExpenseRepo(), noSummary())

	_, err := svc.CreateCategory(context.Background(), domain.BudgetCategory{
		TripID:        uuid.New(),
		Name:          "Food",
		PlannedAmount: decimal.RequireFromString("-1"),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBudgetService_CreateCategory_UnknownTrip(t *testing.T) {
	svc := service.NewBudgetService(tripMissing(), echoCategoryRepo(), echoExpenseRepo(), noSummary())

	_, err := svc.CreateCategory(context.Background(), domain.BudgetCategory{
		TripID: uuid.New(),
		Name:   "Food",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBudgetService_UpdateCategory_PartialMerge(t *testing.T) {
	existing := domain.BudgetCategory{
		ID:            uuid.New(),
		TripID:        uuid.New(),
		Name:          "Food",
		PlannedAmount: decimal.RequireFromString("300"),
	}

	var sent domain.BudgetCategory
	cats := &mockBudgetCategoryRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.BudgetCategory, error) {
			return existing, nil
		},
		update: func(_ context.Context, c domain.BudgetCategory) (domain.BudgetCategory, error) {
			sent = c
			return c, nil
		},
	}
	svc := service.NewBudgetService(tripExists(), cats, echoExpenseRepo(), noSummary())

	newPlanned := decimal.RequireFromString("450")
	_, err := svc.UpdateCategory(context.Background(), existing.TripID, existing.ID,
		domain.BudgetCategoryPatch{PlannedAmount: &newPlanned})

	require.NoError(t, err)
	assert.Equal(t, "Food", sent.Name, "unpatched field keeps its stored value")
	assert.True(t, sent.PlannedAmount.Equal(newPlanned))
}

func TestBudgetService_UpdateCategory_NotFound(t *testing.T) {
	cats := &mockBudgetCategoryRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.BudgetCategory, error) {
			return domain.BudgetCategory{}, domain.ErrNotFound
		},
	}
	svc := service.NewBudgetService(tripExists(), cats, echoExpenseRepo(), noSummary())

	name := "x"
	_, err := svc.UpdateCategory(context.Background(), uuid.New(), uuid.New(),
		domain.BudgetCategoryPatch{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBudgetService_CreateExpense_Valid(t *testing.T) {
	catID := uuid.New()
	svc := service.NewBudgetService(tripExists(), echoCategoryRepo(), echoExpenseRepo(), noSummary())

	got, err := svc.CreateExpense(context.Background(), domain.BudgetExpense{
		TripID:     uuid.New(),
		CategoryID: &catID,
		Amount:     decimal.RequireFromString("23.90"),
	})

	require.NoError(t, err)
	require.NotNil(t, got.CategoryName, "category name should be attached on create")
	assert.Equal(t, "Food", *got.CategoryName)
}

func TestBudgetService_CreateExpense_AmountMustBePositive(t *testing.T) {
	svc := service.NewBudgetService(tripExists(), echoCategoryRepo(), echoExpenseRepo(), noSummary())

	for _, amount := range []string{"0", "-5"} {
		_, err := svc.CreateExpense(context.Background(), domain.BudgetExpense{
			TripID: uuid.New(),
			Amount: decimal.RequireFromString(amount),
		})
		assert.ErrorIs(t, err, domain.ErrValidation, "amount %s", amount)
	}
}

func TestBudgetService_CreateExpense_CurrencyNormalized(t *testing.T) {
	svc := service.NewBudgetService(tripExists(), echoCategoryRepo(), echoExpenseRepo(), noSummary())

	code := "eur"
	got, err := svc.CreateExpense(context.Background(), domain.BudgetExpense{
		TripID:       uuid.New(),
		Amount:       decimal.RequireFromString("10"),
		CurrencyCode: &code,
	})

	require.NoError(t, err)
	require.NotNil(t, got.CurrencyCode)
	assert.Equal(t, "EUR", *got.CurrencyCode)
}

func TestBudgetService_CreateExpense_CategoryFromAnotherTrip(t *testing.T) {
	cats := &mockBudgetCategoryRepo{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.BudgetCategory, error) {
			return domain.BudgetCategory{}, domain.ErrNotFound
		},
	}
	svc := service.NewBudgetService(tripExists(), cats, echoExpenseRepo(), noSummary())

	catID := uuid.New()
	_, err := svc.CreateExpense(context.Background(), domain.BudgetExpense{
		TripID:     uuid.New(),
		CategoryID: &catID,
		Amount:     decimal.RequireFromString("10"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestBudgetService_ListExpenses_BatchNameLookup verifies the category names
// are attached with one batch query over the distinct category IDs, however
// many expenses the trip has.
func TestBudgetService_ListExpenses_BatchNameLookup(t *testing.T) {
	tripID := uuid.New()
	food := uuid.New()
	transport := uuid.New()

	exps := &mockBudgetExpenseRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.BudgetExpense, error) {
			return []domain.BudgetExpense{
				{TripID: tripID, CategoryID: &food, Amount: decimal.RequireFromString("10")},
				{TripID: tripID, CategoryID: &food, Amount: decimal.RequireFromString("20")},
				{TripID: tripID, CategoryID: &transport, Amount: decimal.RequireFromString("30")},
				{TripID: tripID, Amount: decimal.RequireFromString("40")}, // uncategorized
			}, nil
		},
	}

	var calls int
	var askedFor []uuid.UUID
	cats := &mockBudgetCategoryRepo{
		namesByIDs: func(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
			calls++
			askedFor = ids
			return map[uuid.UUID]string{food: "Food", transport: "Transport"}, nil
		},
	}
	svc := service.NewBudgetService(tripExists(), cats, exps, noSummary())

	got, err := svc.ListExpenses(context.Background(), tripID)

	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 1, calls, "names should come from a single batch query")
	assert.ElementsMatch(t, []uuid.UUID{food, transport}, askedFor, "only distinct category IDs")

	require.NotNil(t, got[0].CategoryName)
	assert.Equal(t, "Food", *got[0].CategoryName)
	require.NotNil(t, got[2].CategoryName)
	assert.Equal(t, "Transport", *got[2].CategoryName)
	assert.Nil(t, got[3].CategoryName, "uncategorized expense has no name")
}

func TestBudgetService_ListExpenses_NoCategorizedExpenses(t *testing.T) {
	exps := &mockBudgetExpenseRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.BudgetExpense, error) {
			return []domain.BudgetExpense{
				{Amount: decimal.RequireFromString("10")},
			}, nil
		},
	}
	// namesByIDs is intentionally unset: with no category IDs in the list
	// the batch lookup must be skipped entirely.
	cats := &mockBudgetCategoryRepo{}
	svc := service.NewBudgetService(tripExists(), cats, exps, noSummary())

	got, err := svc.ListExpenses(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].CategoryName)
}

func TestBudgetService_Summary(t *testing.T) {
	tripID := uuid.New()
	foodID := uuid.New()
	transportID := uuid.New()

	summary := &mockBudgetSummaryRepo{
		totals: func(_ context.Context, _ uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.RequireFromString("450"), decimal.RequireFromString("120.50"), nil
		},
		categoryBreakdown: func(_ context.Context, _ uuid.UUID) ([]domain.BudgetCategorySummary, error) {
			return []domain.BudgetCategorySummary{
				{ID: foodID, Name: "Food", PlannedAmount: decimal.RequireFromString("300"), ActualAmount: decimal.RequireFromString("120.50")},
				{ID: transportID, Name: "Transport", PlannedAmount: decimal.RequireFromString("150"), ActualAmount: decimal.Zero},
			}, nil
		},
	}
	svc := service.NewBudgetService(tripExists(), echoCategoryRepo(), echoExpenseRepo(), summary)

	got, err := svc.Summary(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, tripID, got.TripID)
	assert.True(t, got.Totals.PlannedTotal.Equal(decimal.RequireFromString("450")))
	assert.True(t, got.Totals.ActualTotal.Equal(decimal.RequireFromString("120.50")))
	assert.True(t, got.Totals.RemainingTotal.Equal(decimal.RequireFromString("329.50")),
		"remaining = planned - actual, got %s", got.Totals.RemainingTotal)

	require.Len(t, got.ByCategory, 2)
	assert.True(t, got.ByCategory[0].RemainingAmount.Equal(decimal.RequireFromString("179.50")))
	assert.True(t, got.ByCategory[1].RemainingAmount.Equal(decimal.RequireFromString("150")))
}

func TestBudgetService_Summary_OverBudget(t *testing.T) {
	summary := &mockBudgetSummaryRepo{
		totals: func(_ context.Context, _ uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.RequireFromString("100"), decimal.RequireFromString("130"), nil
		},
		categoryBreakdown: func(_ context.Context, _ uuid.UUID) ([]domain.BudgetCategorySummary, error) {
			return nil, nil
		},
	}
	svc := service.NewBudgetService(tripExists(), echoCategoryRepo(), echoExpenseRepo(), summary)

	got, err := svc.Summary(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, got.Totals.RemainingTotal.Equal(decimal.RequireFromString("-30")),
		"over budget is a negative remainder, not an error")
}

func TestBudgetService_Summary_UnknownTrip(t *testing.T) {
	svc := service.NewBudgetService(tripMissing(), echoCategoryRepo(), echoExpenseRepo(), noSummary())

	_, err := svc.Summary(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
