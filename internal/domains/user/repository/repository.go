package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/user/model"
	"hotel/internal/store"
	"hotel/shared/constant"
)

// User lookups return a zero User when nothing matches.
type User interface {
	Insert(ctx context.Context, user model.User) (model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) User {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (repo *repositoryImpl) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, operation)
}

func (repo *repositoryImpl) Insert(ctx context.Context, user model.User) (model.User, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	return repo.store.CreateUser(user), nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.User, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	user, _ := repo.store.GetUser(id)

	return user, nil
}

func (repo *repositoryImpl) GetByUsername(ctx context.Context, username string) (model.User, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetByUsername"))
	defer scope.End()

	user, _ := repo.store.GetUserByUsername(username)

	return user, nil
}
