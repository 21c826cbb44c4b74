package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Validate(t *testing.T) {
	valid := func() dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			RoomID:     1,
			GuestName:  "Ada Lovelace",
			GuestEmail: "ada@example.com",
			CheckIn:    "2024-06-01",
			CheckOut:   "2024-06-04",
			Guests:     2,
			TotalPrice: "897.00",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*dto.CreateBookingRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(*dto.CreateBookingRequest) {}},
		{name: "rfc3339 dates", mutate: func(r *dto.CreateBookingRequest) { r.CheckIn = "2024-06-01T14:00:00Z" }},
		{name: "missing guest name", mutate: func(r *dto.CreateBookingRequest) { r.GuestName = "" }, wantErr: true},
		{name: "bad email", mutate: func(r *dto.CreateBookingRequest) { r.GuestEmail = "ada" }, wantErr: true},
		{name: "bad date", mutate: func(r *dto.CreateBookingRequest) { r.CheckOut = "06/04/2024" }, wantErr: true},
		{name: "zero guests", mutate: func(r *dto.CreateBookingRequest) { r.Guests = 0 }, wantErr: true},
		{name: "price not decimal", mutate: func(r *dto.CreateBookingRequest) { r.TotalPrice = "lots" }, wantErr: true},
		{name: "negative price", mutate: func(r *dto.CreateBookingRequest) { r.TotalPrice = "-1.00" }, wantErr: true},
		{name: "cancelled status", mutate: func(r *dto.CreateBookingRequest) { r.Status = model.StatusCancelled }},
		{name: "completed status", mutate: func(r *dto.CreateBookingRequest) { r.Status = model.StatusCompleted }},
		{name: "unknown status", mutate: func(r *dto.CreateBookingRequest) { r.Status = "pending" }, wantErr: true},
		{name: "phone too long", mutate: func(r *dto.CreateBookingRequest) { r.GuestPhone = "+1 555 0100 0100 0100 99" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:     1,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-04",
		Guests:     2,
		TotalPrice: "897.00",
	}

	booking, err := req.ToModel()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), booking.CheckIn.UTC())
	assert.Equal(t, 3, model.Nights(booking.CheckIn, booking.CheckOut))
	assert.Equal(t, model.StatusConfirmed, booking.Status)

	req.Status = model.StatusCancelled
	booking, err = req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, booking.Status)

	req.CheckOut = "2024-05-30"
	_, err = req.ToModel()
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestBookingResponse_JSON(t *testing.T) {
	var res dto.BookingResponse

	res.FromModel(model.Booking{
		ID:         1,
		RoomID:     1,
		GuestName:  "Ada Lovelace",
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		TotalPrice: "897.00",
		Status:     model.StatusConfirmed,
		CreatedAt:  time.Date(2024, 5, 20, 9, 30, 15, 250_000_000, time.UTC),
	})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "897.00", body["totalPrice"])
	assert.EqualValues(t, 1, body["roomId"])
	assert.Nil(t, body["guestPhone"])
	assert.Contains(t, body, "guestPhone")
	assert.Equal(t, "2024-06-01T00:00:00Z", body["checkIn"])
	assert.Equal(t, "2024-05-20T09:30:15.25Z", body["createdAt"])
}
