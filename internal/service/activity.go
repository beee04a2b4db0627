package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// ActivityService implements business logic for activities.
type ActivityService struct {
	trips repo.TripRepo
	acts  repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, acts repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, acts: acts}
}

// Create verifies the parent trip exists, validates, then persists.
//   - Name must be non-empty.
//   - EndTime, if both are set, must not be before StartTime.
//   - Cost, if set, must not be negative.
func (s *ActivityService) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, act.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if strings.TrimSpace(act.Name) == "" {
		return domain.Activity{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if act.StartTime != nil && act.EndTime != nil && act.EndTime.Before(*act.StartTime) {
		return domain.Activity{}, fmt.Errorf("%w: end_time must not be before start_time", domain.ErrValidation)
	}
	if act.Cost != nil && act.Cost.IsNegative() {
		return domain.Activity{}, fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}

	result, err := s.acts.Create(ctx, act)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip's activities, newest first.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}
	acts, err := s.acts.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}
	if acts == nil {
		return []domain.Activity{}, nil
	}
	return acts, nil
}
