package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/contact/model"
	"hotel/internal/store"
	"hotel/shared/constant"
)

type Contact interface {
	Insert(ctx context.Context, contact model.Contact) (model.Contact, error)
	GetAll(ctx context.Context) ([]model.Contact, error)
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Contact {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, contact model.Contact) (model.Contact, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.store.CreateContact(contact), nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Contact, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.store.GetContacts(), nil
}
