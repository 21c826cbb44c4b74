package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Contact=MockContactService

import (
	"context"
	"fmt"
	"strconv"

	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/contact/model/dto"
	"hotel/internal/domains/contact/repository"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	GetAll(ctx context.Context) ([]dto.ContactResponse, error)
}

type serviceImpl struct {
	repo      repository.Contact
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(repo repository.Contact, publisher kafka.Publisher, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contact, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return res, fmt.Errorf("failed to create contact: %w", err)
	}

	res.FromModel(contact)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   strconv.FormatInt(res.ID, 10),
			Type:  constant.EventContactCreated,
			Value: res,
		}

		if err := s.publisher.Publish(c, message); err != nil {
			log.Error().Err(err).Int64("id", res.ID).Msg("failed to publish contact created event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contacts, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}

	return dto.FromModels(contacts), nil
}
