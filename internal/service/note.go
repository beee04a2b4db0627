package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// NoteService implements business logic for trip notes.
type NoteService struct {
	trips repo.TripRepo
	notes repo.NoteRepo
}

// NewNoteService constructs a NoteService backed by the provided repos.
func NewNoteService(trips repo.TripRepo, notes repo.NoteRepo) *NoteService {
	return &NoteService{trips: trips, notes: notes}
}

// Create verifies the parent trip exists, validates, then persists.
func (s *NoteService) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	if _, err := s.trips.GetByID(ctx, note.TripID); err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Create: %w", err)
	}
	if strings.TrimSpace(note.Content) == "" {
		return domain.Note{}, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	result, err := s.notes.Create(ctx, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip's notes, most recently updated first.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *NoteService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.NoteService.ListByTrip: %w", err)
	}
	notes, err := s.notes.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.NoteService.ListByTrip: %w", err)
	}
	if notes == nil {
		return []domain.Note{}, nil
	}
	return notes, nil
}
