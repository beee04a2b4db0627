package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// DestinationService implements business logic for trip destinations.
type DestinationService struct {
	trips repo.TripRepo
	dests repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the provided repos.
func NewDestinationService(trips repo.TripRepo, dests repo.DestinationRepo) *DestinationService {
	return &DestinationService{trips: trips, dests: dests}
}

// Create verifies the parent trip exists, validates, then persists.
func (s *DestinationService) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if _, err := s.trips.GetByID(ctx, dest.TripID); err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	if strings.TrimSpace(dest.Name) == "" {
		return domain.Destination{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	result, err := s.dests.Create(ctx, dest)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip's destinations ordered by sort_order.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DestinationService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.DestinationService.ListByTrip: %w", err)
	}
	dests, err := s.dests.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.ListByTrip: %w", err)
	}
	if dests == nil {
		return []domain.Destination{}, nil
	}
	return dests, nil
}
