package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/store"
	"hotel/shared/constant"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (model.Booking, error)
	Get(ctx context.Context, id int64) (model.Booking, error)
	GetByRoom(ctx context.Context, roomID int64) ([]model.Booking, error)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (repo *repositoryImpl) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, operation)
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (model.Booking, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	booking = repo.store.CreateBooking(booking)
	scope.SetAttribute("booking.id", booking.ID)

	return booking, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Booking, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	scope.SetAttribute("booking.id", id)
	booking, _ := repo.store.GetBooking(id)

	return booking, nil
}

func (repo *repositoryImpl) GetByRoom(ctx context.Context, roomID int64) ([]model.Booking, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetByRoom"))
	defer scope.End()

	scope.SetAttribute("room.id", roomID)

	return repo.store.GetBookingsByRoom(roomID), nil
}
