package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/handler"
)

// Function-field test doubles for the handler's servicer interfaces.
// Set only the method fields your test needs; an unset field panics, which
// catches handlers calling into services they should not reach.

type mockUserServicer struct {
	create func(ctx context.Context, user domain.User) (domain.User, error)
	list   func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserServicer) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserServicer) List(ctx context.Context) ([]domain.User, error) {
	return m.list(ctx)
}

type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, userID *uuid.UUID) ([]domain.Trip, error)
	update  func(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context, userID *uuid.UUID) ([]domain.Trip, error) {
	return m.list(ctx, userID)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	return m.update(ctx, id, patch)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockDestinationServicer struct {
	create     func(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
}

func (m *mockDestinationServicer) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.create(ctx, d)
}
func (m *mockDestinationServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	return m.listByTrip(ctx, tripID)
}

type mockItineraryServicer struct {
	createDay  func(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error)
	listDays   func(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error)
	createItem func(ctx context.Context, tripID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error)
	listItems  func(ctx context.Context, tripID, dayID uuid.UUID) ([]domain.ItineraryItem, error)
}

func (m *mockItineraryServicer) CreateDay(ctx context.Context, d domain.ItineraryDay) (domain.ItineraryDay, error) {
	return m.createDay(ctx, d)
}
func (m *mockItineraryServicer) ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	return m.listDays(ctx, tripID)
}
func (m *mockItineraryServicer) CreateItem(ctx context.Context, tripID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	return m.createItem(ctx, tripID, item)
}
func (m *mockItineraryServicer) ListItems(ctx context.Context, tripID, dayID uuid.UUID) ([]domain.ItineraryItem, error) {
	return m.listItems(ctx, tripID, dayID)
}

type mockAccommodationServicer struct {
	create     func(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error)
}

func (m *mockAccommodationServicer) Create(ctx context.Context, a domain.Accommodation) (domain.Accommodation, error) {
	return m.create(ctx, a)
}
func (m *mockAccommodationServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error) {
	return m.listByTrip(ctx, tripID)
}

type mockActivityServicer struct {
	create     func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTrip(ctx, tripID)
}

type mockNoteServicer struct {
	create     func(ctx context.Context, note domain.Note) (domain.Note, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error)
}

func (m *mockNoteServicer) Create(ctx context.Context, n domain.Note) (domain.Note, error) {
	return m.create(ctx, n)
}
func (m *mockNoteServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error) {
	return m.listByTrip(ctx, tripID)
}

type mockBudgetServicer struct {
	createCategory func(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error)
	listCategories func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategory, error)
	updateCategory func(ctx context.Context, tripID, catID uuid.UUID, patch domain.BudgetCategoryPatch) (domain.BudgetCategory, error)
	deleteCategory func(ctx context.Context, tripID, catID uuid.UUID) error
	createExpense  func(ctx context.Context, exp domain.BudgetExpense) (domain.BudgetExpense, error)
	listExpenses   func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetExpense, error)
	deleteExpense  func(ctx context.Context, tripID, expID uuid.UUID) error
	summary        func(ctx context.Context, tripID uuid.UUID) (domain.BudgetSummary, error)
}

func (m *mockBudgetServicer) CreateCategory(ctx context.Context, c domain.BudgetCategory) (domain.BudgetCategory, error) {
	return m.createCategory(ctx, c)
}
func (m *mockBudgetServicer) ListCategories(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategory, error) {
	return m.listCategories(ctx, tripID)
}
func (m *mockBudgetServicer) UpdateCategory(ctx context.Context, tripID, catID uuid.UUID, patch domain.BudgetCategoryPatch) (domain.BudgetCategory, error) {
	return m.updateCategory(ctx, tripID, catID, patch)
}
func (m *mockBudgetServicer) DeleteCategory(ctx context.Context, tripID, catID uuid.UUID) error {
	return m.deleteCategory(ctx, tripID, catID)
}
func (m *mockBudgetServicer) CreateExpense(ctx context.Context, e domain.BudgetExpense) (domain.BudgetExpense, error) {
	return m.createExpense(ctx, e)
}
func (m *mockBudgetServicer) ListExpenses(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetExpense, error) {
	return m.listExpenses(ctx, tripID)
}
func (m *mockBudgetServicer) DeleteExpense(ctx context.Context, tripID, expID uuid.UUID) error {
	return m.deleteExpense(ctx, tripID, expID)
}
func (m *mockBudgetServicer) Summary(ctx context.Context, tripID uuid.UUID) (domain.BudgetSummary, error) {
	return m.summary(ctx, tripID)
}

// compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.UserServicer          = (*mockUserServicer)(nil)
	_ handler.TripServicer          = (*mockTripServicer)(nil)
	_ handler.DestinationServicer   = (*mockDestinationServicer)(nil)
	_ handler.ItineraryServicer     = (*mockItineraryServicer)(nil)
	_ handler.AccommodationServicer = (*mockAccommodationServicer)(nil)
	_ handler.ActivityServicer      = (*mockActivityServicer)(nil)
	_ handler.NoteServicer          = (*mockNoteServicer)(nil)
	_ handler.BudgetServicer        = (*mockBudgetServicer)(nil)
)

// serverMocks bundles one mock per servicer so tests can wire only the mocks
// they care about and leave the rest panicking on use.
type serverMocks struct {
	users          *mockUserServicer
	trips          *mockTripServicer
	destinations   *mockDestinationServicer
	itinerary      *mockItineraryServicer
	accommodations *mockAccommodationServicer
	activities     *mockActivityServicer
	notes          *mockNoteServicer
	budget         *mockBudgetServicer
}

// newTestRouter wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production. Nil mocks are replaced with
// empty doubles so the router can still be built.
func newTestRouter(m serverMocks) http.Handler {
	if m.users == nil {
		m.users = &mockUserServicer{}
	}
	if m.trips == nil {
		m.trips = &mockTripServicer{}
	}
	if m.destinations == nil {
		m.destinations = &mockDestinationServicer{}
	}
	if m.itinerary == nil {
		m.itinerary = &mockItineraryServicer{}
	}
	if m.accommodations == nil {
		m.accommodations = &mockAccommodationServicer{}
	}
	if m.activities == nil {
		m.activities = &mockActivityServicer{}
	}
	if m.notes == nil {
		m.notes = &mockNoteServicer{}
	}
	if m.budget == nil {
		m.budget = &mockBudgetServicer{}
	}
	srv := handler.NewServer(
		m.users, m.trips, m.destinations, m.itinerary,
		m.accommodations, m.activities, m.notes, m.budget,
	)
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// errorBody is the shape of every non-2xx response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, body *bytes.Buffer) errorBody {
	t.Helper()
	var e errorBody
	require.NoError(t, json.NewDecoder(body).Decode(&e))
	return e
}
