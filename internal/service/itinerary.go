package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// ItineraryService implements business logic for itinerary days and the
// scheduled items within them. It holds the activity and accommodation repos
// because an item may reference either, and the reference must point at a
// record of the same trip.
type ItineraryService struct {
	trips repo.TripRepo
	days  repo.ItineraryRepo
	acts  repo.ActivityRepo
	accs  repo.AccommodationRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, days repo.ItineraryRepo, acts repo.ActivityRepo, accs repo.AccommodationRepo) *ItineraryService {
	return &ItineraryService{trips: trips, days: days, acts: acts, accs: accs}
}

// CreateDay verifies the parent trip exists, then persists the day.
// Returns domain.ErrConflict if the trip already has a day for that date.
func (s *ItineraryService) CreateDay(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error) {
	if _, err := s.trips.GetByID(ctx, day.TripID); err != nil {
		return domain.ItineraryDay{}, fmt.Errorf("service.ItineraryService.CreateDay: %w", err)
	}
	if day.DayDate.IsZero() {
		return domain.ItineraryDay{}, fmt.Errorf("%w: day_date is required", domain.ErrValidation)
	}

	result, err := s.days.CreateDay(ctx, day)
	if err != nil {
		return domain.ItineraryDay{}, fmt.Errorf("service.ItineraryService.CreateDay: %w", err)
	}
	return result, nil
}

// ListDays returns the trip's itinerary days in calendar order.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListDays: %w", err)
	}
	days, err := s.days.ListDays(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListDays: %w", err)
	}
	if days == nil {
		return []domain.ItineraryDay{}, nil
	}
	return days, nil
}

// CreateItem verifies the day exists under the trip, validates the tagged
// reference, then persists the item.
func (s *ItineraryService) CreateItem(ctx context.Context, tripID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	if _, err := s.days.GetDayByID(ctx, tripID, item.DayID); err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.CreateItem: %w", err)
	}
	if err := validateItem(item); err != nil {
		return domain.ItineraryItem{}, err
	}

	// A referenced activity or accommodation must belong to the same trip.
	if item.ActivityID != nil {
		if _, err := s.acts.GetByID(ctx, tripID, *item.ActivityID); err != nil {
			return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.CreateItem: activity: %w", err)
		}
	}
	if item.AccommodationID != nil {
		if _, err := s.accs.GetByID(ctx, tripID, *item.AccommodationID); err != nil {
			return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.CreateItem: accommodation: %w", err)
		}
	}

	result, err := s.days.CreateItem(ctx, item)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.CreateItem: %w", err)
	}
	return result, nil
}

// ListItems returns a day's items in schedule order.
// Returns domain.ErrNotFound if the day does not exist under the trip.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) ListItems(ctx context.Context, tripID, dayID uuid.UUID) ([]domain.ItineraryItem, error) {
	if _, err := s.days.GetDayByID(ctx, tripID, dayID); err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListItems: %w", err)
	}
	items, err := s.days.ListItems(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListItems: %w", err)
	}
	if items == nil {
		return []domain.ItineraryItem{}, nil
	}
	return items, nil
}

// validateItem enforces the tagged-variant rules for itinerary items:
//   - Title must be non-empty.
//   - ItemType must be one of activity, accommodation, custom.
//   - At most one of ActivityID and AccommodationID may be set, and the
//     set one must match ItemType.
//   - Custom items carry no reference at all.
func validateItem(item domain.ItineraryItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if item.ActivityID != nil && item.AccommodationID != nil {
		return fmt.Errorf("%w: an item may reference an activity or an accommodation, not both", domain.ErrValidation)
	}

	switch item.ItemType {
	case domain.ItemTypeActivity:
		if item.AccommodationID != nil {
			return fmt.Errorf("%w: an activity item cannot reference an accommodation", domain.ErrValidation)
		}
	case domain.ItemTypeAccommodation:
		if item.ActivityID != nil {
			return fmt.Errorf("%w: an accommodation item cannot reference an activity", domain.ErrValidation)
		}
	case domain.ItemTypeCustom:
		if item.ActivityID != nil || item.AccommodationID != nil {
			return fmt.Errorf("%w: a custom item cannot carry a reference", domain.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: item_type must be activity, accommodation, or custom", domain.ErrValidation)
	}
	return nil
}
