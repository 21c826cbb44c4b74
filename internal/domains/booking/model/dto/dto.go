package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID     int64  `json:"roomId"     validate:"required,min=1"`
	GuestName  string `json:"guestName"  validate:"required,max=100"`
	GuestEmail string `json:"guestEmail" validate:"required,email,max=100"`
	GuestPhone string `json:"guestPhone" validate:"omitempty,max=20"`
	CheckIn    string `json:"checkIn"    validate:"required,isodate"`
	CheckOut   string `json:"checkOut"   validate:"required,isodate"`
	Guests     int    `json:"guests"     validate:"required,min=1"`
	TotalPrice string `json:"totalPrice" validate:"required,decimal"`
	Status     string `json:"status"     validate:"omitempty,oneof=confirmed cancelled completed"`
}

// ToModel parses the stay. An omitted status means confirmed.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, checkOut, err := model.ParseStay(c.CheckIn, c.CheckOut)
	if err != nil {
		return model.Booking{}, failure.BadRequest(err)
	}

	status := c.Status
	if status == constant.Empty {
		status = model.StatusConfirmed
	}

	return model.Booking{
		RoomID:     c.RoomID,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		GuestPhone: c.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     c.Guests,
		TotalPrice: c.TotalPrice,
		Status:     status,
	}, nil
}

type BookingResponse struct {
	ID         int64   `json:"id"`
	RoomID     int64   `json:"roomId"`
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone *string `json:"guestPhone"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Guests     int     `json:"guests"`
	TotalPrice string  `json:"totalPrice"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.RoomID = model.RoomID
	b.GuestName = model.GuestName
	b.GuestEmail = model.GuestEmail
	b.CheckIn = timezone.Format(model.CheckIn, constant.DateFormat)
	b.CheckOut = timezone.Format(model.CheckOut, constant.DateFormat)
	b.Guests = model.Guests
	b.TotalPrice = model.TotalPrice
	b.Status = model.Status
	b.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)

	if model.GuestPhone != constant.Empty {
		phone := model.GuestPhone
		b.GuestPhone = &phone
	}
}

func FromModels(models []model.Booking) []BookingResponse {
	bookings := make([]BookingResponse, 0, len(models))

	for _, m := range models {
		var booking BookingResponse

		booking.FromModel(m)
		bookings = append(bookings, booking)
	}

	return bookings
}

type QuoteRequest struct {
	RoomID   int64  `json:"roomId"   validate:"required,min=1"`
	CheckIn  string `json:"checkIn"  validate:"required,isodate"`
	CheckOut string `json:"checkOut" validate:"required,isodate"`
}

type QuoteResponse struct {
	RoomID     int64  `json:"roomId"`
	Nights     int    `json:"nights"`
	Price      string `json:"price"`
	TotalPrice string `json:"totalPrice"`
}
