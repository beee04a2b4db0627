package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/service"
)

func echoActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{
		create: func(_ context.Context, a domain.Activity) (domain.Activity, error) { return a, nil },
	}
}

func TestActivityService_Create_Valid(t *testing.T) {
	svc := service.NewActivityService(tripExists(), echoActivityRepo())

	cost := decimal.RequireFromString("38.00")
	got, err := svc.Create(context.Background(), domain.Activity{
		TripID: uuid.New(),
		Name:   "Shrine hike",
		Cost:   &cost,
	})

	require.NoError(t, err)
	assert.Equal(t, "Shrine hike", got.Name)
}

func TestActivityService_Create_MissingName(t *testing.T) {
	svc := service.NewActivityService(tripExists(), echoActivityRepo())

	_, err := svc.Create(context.Background(), domain.Activity{TripID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_Create_NegativeCost(t *testing.T) {
	svc := service.NewActivityService(tripExists(), echoActivityRepo())

	cost := decimal.RequireFromString("-1")
	_, err := svc.Create(context.Background(), domain.Activity{
		TripID: uuid.New(),
		Name:   "Hike",
		Cost:   &cost,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_Create_ZeroCostAllowed(t *testing.T) {
	svc := service.NewActivityService(tripExists(), echoActivityRepo())

	cost := decimal.Zero
	_, err := svc.Create(context.Background(), domain.Activity{
		TripID: uuid.New(),
		Name:   "Free walking tour",
		Cost:   &cost,
	})

	assert.NoError(t, err, "a free activity is valid")
}

func TestActivityService_Create_EndBeforeStart(t *testing.T) {
	svc := service.NewActivityService(tripExists(), echoActivityRepo())

	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := svc.Create(context.Background(), domain.Activity{
		TripID:    uuid.New(),
		Name:      "Hike",
		StartTime: &start,
		EndTime:   &end,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_ListByTrip_UnknownTrip(t *testing.T) {
	svc := service.NewActivityService(tripMissing(), echoActivityRepo())

	_, err := svc.ListByTrip(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
