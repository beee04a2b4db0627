package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// AccommodationService implements business logic for accommodations.
type AccommodationService struct {
	trips repo.TripRepo
	accs  repo.AccommodationRepo
}

// NewAccommodationService constructs an AccommodationService backed by the provided repos.
func NewAccommodationService(trips repo.TripRepo, accs repo.AccommodationRepo) *AccommodationService {
	return &AccommodationService{trips: trips, accs: accs}
}

// Create verifies the parent trip exists, validates, then persists.
//   - Name must be non-empty.
//   - CheckOut, if both are set, must not be before CheckIn.
func (s *AccommodationService) Create(ctx context.Context, acc domain.Accommodation) (domain.Accommodation, error) {
	if _, err := s.trips.GetByID(ctx, acc.TripID); err != nil {
		return domain.Accommodation{}, fmt.Errorf("service.AccommodationService.Create: %w", err)
	}
	if strings.TrimSpace(acc.Name) == "" {
		return domain.Accommodation{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if acc.CheckIn != nil && acc.CheckOut != nil && acc.CheckOut.Before(*acc.CheckIn) {
		return domain.Accommodation{}, fmt.Errorf("%w: check_out must not be before check_in", domain.ErrValidation)
	}

	result, err := s.accs.Create(ctx, acc)
	if err != nil {
		return domain.Accommodation{}, fmt.Errorf("service.AccommodationService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip's accommodations, newest first.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *AccommodationService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Accommodation, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.AccommodationService.ListByTrip: %w", err)
	}
	accs, err := s.accs.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.AccommodationService.ListByTrip: %w", err)
	}
	if accs == nil {
		return []domain.Accommodation{}, nil
	}
	return accs, nil
}
