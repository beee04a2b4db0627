package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field; set only the ones your test needs. A call to an unset
// field panics, which surfaces unexpected repo usage immediately.
// No mock generation library needed for interfaces this small.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, userID *uuid.UUID) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, userID *uuid.UUID) ([]domain.Trip, error) {
	return m.list(ctx, userID)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

// tripExists returns a mockTripRepo whose GetByID always succeeds, for tests
// that only need the parent-trip check to pass.
func tripExists() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id, Name: "A Trip", CurrencyCode: "USD"}, nil
		},
	}
}

// tripMissing returns a mockTripRepo whose GetByID always fails with not found.
func tripMissing() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

type mockUserRepo struct {
	create  func(ctx context.Context, user domain.User) (domain.User, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.User, error)
	list    func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.create(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return m.list(ctx)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

// userExists returns a mockUserRepo whose GetByID always succeeds.
func userExists() *mockUserRepo {
	return &mockUserRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.User, error) {
			return domain.User{ID: id, Email: "user@example.com"}, nil
		},
	}
}

type mockDestinationRepo struct {
	create     func(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
}

func (m *mockDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	return m.create(ctx, dest)
}
func (m *mockDestinationRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.DestinationRepo = (*mockDestinationRepo)(nil)

type mockItineraryRepo struct {
	createDay  func(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error)
	getDayByID func(ctx context.Context, tripID, dayID uuid.UUID) (domain.ItineraryDay, error)
	listDays   func(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error)
	createItem func(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)
	listItems  func(ctx context.Context, dayID uuid.UUID) ([]domain.ItineraryItem, error)
}

func (m *mockItineraryRepo) CreateDay(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error) {
	return m.createDay(ctx, day)
}
func (m *mockItineraryRepo) GetDayByID(ctx context.Context, tripID, dayID uuid.UUID) (domain.ItineraryDay, error) {
	return m.getDayByID(ctx, tripID, dayID)
}
func (m *mockItineraryRepo) ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	return m.listDays(ctx, tripID)
}
func (m *mockItineraryRepo) CreateItem(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	return m.createItem(ctx, item)
}
func (m *mockItineraryRepo) ListItems(ctx context.Context, dayID uuid.UUID) ([]domain.ItineraryItem, error) {
	return m.listItems(ctx, dayID)
}

var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

type mockAccommodationRepo struct {
	create     func(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error)
	getByID    func(ctx context.Context, tripID, id uuid.UUID) (domain.Accommodation, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error)
}

func (m *mockAccommodationRepo) Create(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error) {
	return m.create(ctx, acc)
}
func (m *mockAccommodationRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Accommodation, error) {
	return m.getByID(ctx, tripID, id)
}
func (m *mockAccommodationRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.AccommodationRepo = (*mockAccommodationRepo)(nil)

type mockActivityRepo struct {
	create     func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	getByID    func(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.create(ctx, act)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, tripID, id)
}
func (m *mockActivityRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockNoteRepo struct {
	create     func(ctx context.Context, note domain.Note) (domain.Note, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error)
}

func (m *mockNoteRepo) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	return m.create(ctx, note)
}
func (m *mockNoteRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.NoteRepo = (*mockNoteRepo)(nil)

type mockBudgetCategoryRepo struct {
	create     func(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error)
	getByID    func(ctx context.Context, tripID, id uuid.UUID) (domain.BudgetCategory, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategory, error)
	update     func(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error)
	delete     func(ctx context.Context, tripID, id uuid.UUID) error
	namesByIDs func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

func (m *mockBudgetCategoryRepo) Create(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error) {
	return m.create(ctx, cat)
}
func (m *mockBudgetCategoryRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.BudgetCategory, error) {
	return m.getByID(ctx, tripID, id)
}
func (m *mockBudgetCategoryRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategory, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockBudgetCategoryRepo) Update(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error) {
	return m.update(ctx, cat)
}
func (m *mockBudgetCategoryRepo) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	return m.delete(ctx, tripID, id)
}
func (m *mockBudgetCategoryRepo) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	return m.namesByIDs(ctx, ids)
}

var _ repo.BudgetCategoryRepo = (*mockBudgetCategoryRepo)(nil)

type mockBudgetExpenseRepo struct {
	create     func(ctx context.Context, exp domain.BudgetExpense) (domain.BudgetExpense, error)
	getByID    func(ctx context.Context, tripID, id uuid.UUID) (domain.BudgetExpense, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetExpense, error)
	delete     func(ctx context.Context, tripID, id uuid.UUID) error
}

func (m *mockBudgetExpenseRepo) Create(ctx context.Context, exp domain.BudgetExpense) (domain.BudgetExpense, error) {
	return m.create(ctx, exp)
}
func (m *mockBudgetExpenseRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.BudgetExpense, error) {
	return m.getByID(ctx, tripID, id)
}
func (m *mockBudgetExpenseRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetExpense, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockBudgetExpenseRepo) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	return m.delete(ctx, tripID, id)
}

var _ repo.BudgetExpenseRepo = (*mockBudgetExpenseRepo)(nil)

type mockBudgetSummaryRepo struct {
	totals            func(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, decimal.Decimal, error)
	categoryBreakdown func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategorySummary, error)
}

func (m *mockBudgetSummaryRepo) Totals(ctx context.Context, tripID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	return m.totals(ctx, tripID)
}
func (m *mockBudgetSummaryRepo) CategoryBreakdown(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategorySummary, error) {
	return m.categoryBreakdown(ctx, tripID)
}

var _ repo.BudgetSummaryRepo = (*mockBudgetSummaryRepo)(nil)
