package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/service"
)

func echoNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{
		create: func(_ context.Context, n domain.Note) (domain.Note, error) { return n, nil },
	}
}

func TestNoteService_Create_Valid(t *testing.T) {
	svc := service.NewNoteService(tripExists(), echoNoteRepo())

	got, err := svc.Create(context.Background(), domain.Note{
		TripID:  uuid.New(),
		Content: "Bring the rail pass voucher.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bring the rail pass voucher.", got.Content)
}

func TestNoteService_Create_MissingContent(t *testing.T) {
	svc := service.NewNoteService(tripExists(), echoNoteRepo())

	_, err := svc.Create(context.Background(), domain.Note{TripID: uuid.New(), Content: " "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNoteService_Create_UnknownTrip(t *testing.T) {
	svc := service.NewNoteService(tripMissing(), echoNoteRepo())

	_, err := svc.Create(context.Background(), domain.Note{TripID: uuid.New(), Content: "x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteService_ListByTrip_NeverNil(t *testing.T) {
	notes := echoNoteRepo()
	notes.listByTrip = func(_ context.Context, _ uuid.UUID) ([]domain.Note, error) { return nil, nil }
	svc := service.NewNoteService(tripExists(), notes)

	got, err := svc.ListByTrip(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
