// Package handler implements the HTTP layer of the travel planner API.
// All handlers are methods on Server. They decode and validate request
// shape, call the service layer, and map domain errors to HTTP statuses.
// Methods are split into resource-specific files (trip.go, budget.go, etc.)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
)

// The servicer interfaces below define the business operations each handler
// depends on. Defining them here, in the consumer package, follows the Go
// convention "accept interfaces, return concrete types" and lets handler
// tests inject a mock without touching the database or service layer.

// UserServicer defines the business operations the user handlers depend on.
type UserServicer interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, userID *uuid.UUID) ([]domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DestinationServicer defines the operations the destination handlers depend on.
type DestinationServicer interface {
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
}

// ItineraryServicer defines the operations the itinerary handlers depend on.
type ItineraryServicer interface {
	CreateDay(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error)
	ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error)
	CreateItem(ctx context.Context, tripID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error)
	ListItems(ctx context.Context, tripID, dayID uuid.UUID) ([]domain.ItineraryItem, error)
}

// AccommodationServicer defines the operations the accommodation handlers depend on.
type AccommodationServicer interface {
	Create(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error)
}

// ActivityServicer defines the operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

// NoteServicer defines the operations the note handlers depend on.
type NoteServicer interface {
	Create(ctx context.Context, note domain.Note) (domain.Note, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error)
}

// BudgetServicer defines the operations the budget handlers depend on.
type BudgetServicer interface {
	CreateCategory(ctx context.Context, cat domain.BudgetCategory) (domain.BudgetCategory, error)
	ListCategories(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetCategory, error)
	UpdateCategory(ctx context.Context, tripID, catID uuid.UUID, patch domain.BudgetCategoryPatch) (domain.BudgetCategory, error)
	DeleteCategory(ctx context.Context, tripID, catID uuid.UUID) error
	CreateExpense(ctx context.Context, exp domain.BudgetExpense) (domain.BudgetExpense, error)
	ListExpenses(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetExpense, error)
	DeleteExpense(ctx context.Context, tripID, expID uuid.UUID) error
	Summary(ctx context.Context, tripID uuid.UUID) (domain.BudgetSummary, error)
}

// Server holds the service dependencies for every handler method.
type Server struct {
	users          UserServicer
	trips          TripServicer
	destinations   DestinationServicer
	itinerary      ItineraryServicer
	accommodations AccommodationServicer
	activities     ActivityServicer
	notes          NoteServicer
	budget         BudgetServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	users UserServicer,
	trips TripServicer,
	destinations DestinationServicer,
	itinerary ItineraryServicer,
	accommodations AccommodationServicer,
	activities ActivityServicer,
	notes NoteServicer,
	budget BudgetServicer,
) *Server {
	return &Server{
		users:          users,
		trips:          trips,
		destinations:   destinations,
		itinerary:      itinerary,
		accommodations: accommodations,
		activities:     activities,
		notes:          notes,
		budget:         budget,
	}
}

// Routes returns the chi router with every API route registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.Health)

	r.Post("/users", s.CreateUser)
	r.Get("/users", s.ListUsers)

	r.Post("/trips", s.CreateTrip)
	r.Get("/trips", s.ListTrips)

	r.Route("/trips/{tripID}", func(r chi.Router) {
		r.Get("/", s.GetTrip)
		r.Patch("/", s.UpdateTrip)
		r.Delete("/", s.DeleteTrip)

		r.Post("/destinations", s.CreateDestination)
		r.Get("/destinations", s.ListDestinations)

		r.Post("/itinerary/days", s.CreateItineraryDay)
		r.Get("/itinerary/days", s.ListItineraryDays)
		r.Post("/itinerary/days/{dayID}/items", s.CreateItineraryItem)
		r.Get("/itinerary/days/{dayID}/items", s.ListItineraryItems)

		r.Post("/accommodations", s.CreateAccommodation)
		r.Get("/accommodations", s.ListAccommodations)

		r.Post("/activities", s.CreateActivity)
		r.Get("/activities", s.ListActivities)

		r.Post("/notes", s.CreateNote)
		r.Get("/notes", s.ListNotes)

		r.Post("/budget/categories", s.CreateBudgetCategory)
		r.Get("/budget/categories", s.ListBudgetCategories)
		r.Patch("/budget/categories/{categoryID}", s.UpdateBudgetCategory)
		r.Delete("/budget/categories/{categoryID}", s.DeleteBudgetCategory)

		r.Post("/budget/expenses", s.CreateBudgetExpense)
		r.Get("/budget/expenses", s.ListBudgetExpenses)
		r.Delete("/budget/expenses/{expenseID}", s.DeleteBudgetExpense)

		r.Get("/budget/summary", s.GetBudgetSummary)
	})

	return r
}

// pathUUID extracts a UUID path parameter by name.
// The second return value is false if the parameter is not a valid UUID;
// callers should respond 404 in that case (a malformed ID can never match).
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}
