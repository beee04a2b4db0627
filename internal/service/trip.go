package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// defaultCurrency is used when a trip is created without a currency code.
const defaultCurrency = "USD"

// TripService implements business logic for Trip operations.
// It holds the user repo as well because creating a trip requires verifying
// the owning user exists.
type TripService struct {
	trips repo.TripRepo
	users repo.UserRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, users repo.UserRepo) *TripService {
	return &TripService{trips: trips, users: users}
}

// Create validates and persists a new trip.
// Returns domain.ErrNotFound if the owning user does not exist and
// domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if _, err := s.users.GetByID(ctx, trip.UserID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	if trip.CurrencyCode == "" {
		trip.CurrencyCode = defaultCurrency
	}
	normalized, err := validateTrip(trip)
	if err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Create(ctx, normalized)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns trips, newest first, optionally restricted to one owner.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID *uuid.UUID) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update applies a partial update to an existing trip: only the fields set
// on the patch are changed, everything else keeps its stored value.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	if patch.Name != nil {
		trip.Name = *patch.Name
	}
	if patch.StartDate != nil {
		trip.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		trip.EndDate = patch.EndDate
	}
	if patch.HomeTimezone != nil {
		trip.HomeTimezone = patch.HomeTimezone
	}
	if patch.CurrencyCode != nil {
		trip.CurrencyCode = *patch.CurrencyCode
	}

	normalized, err := validateTrip(trip)
	if err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Update(ctx, normalized)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip and, through the schema's cascades, everything it owns.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to Create and Update and
// returns the trip with its currency code normalized to uppercase.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - EndDate, if both dates are set, must not be before StartDate.
//   - CurrencyCode must be a 3-letter ISO-4217 code.
func validateTrip(trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.Name) == "" {
		return domain.Trip{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate != nil && trip.EndDate != nil && trip.EndDate.Before(*trip.StartDate) {
		return domain.Trip{}, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	code, err := normalizeCurrency(trip.CurrencyCode)
	if err != nil {
		return domain.Trip{}, err
	}
	trip.CurrencyCode = code
	return trip, nil
}
