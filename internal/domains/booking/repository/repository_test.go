package repository_test

import (
	"context"
	"testing"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(store.New(), mocks.NewOtel())

	first, err := repo.Insert(ctx, model.Booking{RoomID: 2, GuestName: "Ada Lovelace", TotalPrice: "918.00"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, model.StatusConfirmed, first.Status)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = repo.Insert(ctx, model.Booking{RoomID: 3})
	require.NoError(t, err)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	missing, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	byRoom, err := repo.GetByRoom(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []model.Booking{first}, byRoom)
}
