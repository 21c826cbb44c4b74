package model

import "time"

const (
	EntityName = "room"
)

const (
	CategoryDeluxe  = "deluxe"
	CategorySuite   = "suite"
	CategoryPremium = "premium"
	CategoryFamily  = "family"
)

type Room struct {
	ID          int64
	Name        string
	Description string
	Price       string
	Category    string
	MaxGuests   int
	Amenities   []string
	ImageURL    string
	Available   bool
}

// Fits reports whether the room is bookable at all and sleeps the party.
func (r Room) Fits(guests int) bool {
	return r.Available && r.MaxGuests >= guests
}

// AvailabilityCheck is a stay search. Rooms is accepted from the booking
// form but does not influence which rooms are returned.
type AvailabilityCheck struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Rooms    int
}
