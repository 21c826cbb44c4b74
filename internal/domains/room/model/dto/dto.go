package dto

import (
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/room/model"
	"hotel/shared/failure"
)

type AvailabilityRequest struct {
	CheckIn  string `json:"checkIn"  validate:"required,isodate"`
	CheckOut string `json:"checkOut" validate:"required,isodate"`
	Guests   int    `json:"guests"   validate:"required,min=1"`
	Rooms    int    `json:"rooms"    validate:"required,min=1"`
}

func (a *AvailabilityRequest) ToModel() (model.AvailabilityCheck, error) {
	checkIn, checkOut, err := bookingModel.ParseStay(a.CheckIn, a.CheckOut)
	if err != nil {
		return model.AvailabilityCheck{}, failure.BadRequest(err)
	}

	return model.AvailabilityCheck{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   a.Guests,
		Rooms:    a.Rooms,
	}, nil
}

type RoomResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	MaxGuests   int      `json:"maxGuests"`
	Amenities   []string `json:"amenities"`
	ImageURL    string   `json:"imageUrl"`
	Available   bool     `json:"available"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Category = model.Category
	r.MaxGuests = model.MaxGuests
	r.Amenities = model.Amenities
	r.ImageURL = model.ImageURL
	r.Available = model.Available

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}

func FromModels(models []model.Room) []RoomResponse {
	rooms := make([]RoomResponse, 0, len(models))

	for _, m := range models {
		var room RoomResponse

		room.FromModel(m)
		rooms = append(rooms, room)
	}

	return rooms
}
