package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/store"
	"hotel/shared/constant"
)

// Room lookups return a zero Room when the id is unknown.
type Room interface {
	Get(ctx context.Context, id int64) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	GetByCategory(ctx context.Context, category string) ([]model.Room, error)
	Exist(ctx context.Context, id int64) (bool, error)
	CheckAvailability(ctx context.Context, check model.AvailabilityCheck) ([]model.Room, error)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Room {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (repo *repositoryImpl) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, operation)
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Room, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	scope.SetAttribute("room.id", id)
	room, _ := repo.store.GetRoom(id)

	return room, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	return repo.store.GetRooms(), nil
}

func (repo *repositoryImpl) GetByCategory(ctx context.Context, category string) ([]model.Room, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetByCategory"))
	defer scope.End()

	scope.SetAttribute("room.category", category)

	return repo.store.GetRoomsByCategory(category), nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int64) (bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	_, ok := repo.store.GetRoom(id)

	return ok, nil
}

func (repo *repositoryImpl) CheckAvailability(ctx context.Context, check model.AvailabilityCheck) ([]model.Room, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("CheckAvailability"))
	defer scope.End()

	scope.SetAttribute("availability.guests", check.Guests)

	return repo.store.CheckAvailability(check), nil
}
