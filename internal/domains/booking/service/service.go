package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"strconv"

	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/money"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepository.Room
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepository.Room, publisher kafka.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		publisher: publisher,
		otel:      otel,
	}
}

// Create records a booking against an existing room. totalPrice is stored as
// the client computed it.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel()
	if err != nil {
		return res, err
	}

	exist, err := s.roomRepo.Exist(ctx, booking.RoomID)
	if err != nil {
		log.Error().Err(err).Int64("roomId", booking.RoomID).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, failure.UnknownRoom
	}

	booking, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)
	scope.SetAttribute("booking.id", booking.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   strconv.FormatInt(res.ID, 10),
			Type:  constant.EventBookingCreated,
			Value: res,
		}

		if err := s.publisher.Publish(c, message); err != nil {
			log.Error().Err(err).Int64("id", res.ID).Msg("failed to publish booking created event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.BookingNotFound
	}

	res.FromModel(booking)

	return res, nil
}

// Quote prices a stay the way the booking form does: started nights times the
// nightly rate.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := model.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Int64("roomId", req.RoomID).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.RoomNotFound
	}

	nights := model.Nights(checkIn, checkOut)

	total, err := money.Total(room.Price, nights)
	if err != nil {
		log.Error().Err(err).Str("price", room.Price).Msg("failed to compute booking total")

		return res, fmt.Errorf("failed to compute booking total: %w", err)
	}

	return dto.QuoteResponse{
		RoomID:     room.ID,
		Nights:     nights,
		Price:      room.Price,
		TotalPrice: total,
	}, nil
}
