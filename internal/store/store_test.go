package store_test

import (
	"sync"
	"testing"
	"time"

	"hotel/config"
	bookingModel "hotel/internal/domains/booking/model"
	contactModel "hotel/internal/domains/contact/model"
	roomModel "hotel/internal/domains/room/model"
	userModel "hotel/internal/domains/user/model"
	"hotel/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, _ := time.Parse(time.DateOnly, value)

	return t
}

func seeded(opts ...store.Option) *store.Store {
	s := store.New(opts...)
	store.Seed(s)

	return s
}

func names(rooms []roomModel.Room) []string {
	out := make([]string, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, room.Name)
	}

	return out
}

func TestSeed(t *testing.T) {
	s := seeded()
	rooms := s.GetRooms()

	require.Len(t, rooms, 6)

	for i, room := range rooms {
		assert.Equal(t, int64(i+1), room.ID)
		assert.True(t, room.Available)
		assert.Len(t, room.Amenities, 4)
	}

	assert.Equal(t, "Deluxe King Room", rooms[0].Name)
	assert.Equal(t, "299.00", rooms[0].Price)
	assert.Equal(t, "Presidential Suite", rooms[3].Name)
	assert.Equal(t, 6, rooms[3].MaxGuests)
	assert.Equal(t, "Family Room", rooms[5].Name)
	assert.Contains(t, rooms[5].ImageURL, "w=800&h=600")
}

func TestGetRoom(t *testing.T) {
	s := seeded()

	tests := []struct {
		name  string
		id    int64
		want  string
		found bool
	}{
		{name: "first", id: 1, want: "Deluxe King Room", found: true},
		{name: "last", id: 6, want: "Family Room", found: true},
		{name: "past the end", id: 7},
		{name: "zero", id: 0},
		{name: "negative", id: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, ok := s.GetRoom(tt.id)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, room.Name)
		})
	}
}

func TestGetRoomsByCategory(t *testing.T) {
	s := seeded()

	tests := []struct {
		category string
		want     []string
	}{
		{category: "deluxe", want: []string{"Deluxe King Room", "Business Twin Room"}},
		{category: "suite", want: []string{"Executive Suite", "Presidential Suite"}},
		{category: "premium", want: []string{"Ocean View Room"}},
		{category: "family", want: []string{"Family Room"}},
		{category: "Suite", want: []string{}},
		{category: "penthouse", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, names(s.GetRoomsByCategory(tt.category)))
		})
	}
}

func TestCheckAvailability(t *testing.T) {
	s := seeded()

	tests := []struct {
		name   string
		guests int
		want   []string
	}{
		{
			name:   "two guests fit everywhere",
			guests: 2,
			want: []string{
				"Deluxe King Room", "Executive Suite", "Ocean View Room",
				"Presidential Suite", "Business Twin Room", "Family Room",
			},
		},
		{name: "four guests", guests: 4, want: []string{"Executive Suite", "Presidential Suite", "Family Room"}},
		{name: "five guests", guests: 5, want: []string{"Presidential Suite"}},
		{name: "seven guests", guests: 7, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := s.CheckAvailability(roomModel.AvailabilityCheck{
				CheckIn:  date("2024-06-01"),
				CheckOut: date("2024-06-04"),
				Guests:   tt.guests,
				Rooms:    1,
			})

			assert.Equal(t, tt.want, names(rooms))
		})
	}
}

func TestCheckAvailabilityIgnoresBookingsByDefault(t *testing.T) {
	s := seeded()
	s.CreateBooking(bookingModel.Booking{
		RoomID:   4,
		CheckIn:  date("2024-06-01"),
		CheckOut: date("2024-06-04"),
		Guests:   5,
	})

	rooms := s.CheckAvailability(roomModel.AvailabilityCheck{
		CheckIn:  date("2024-06-02"),
		CheckOut: date("2024-06-03"),
		Guests:   5,
	})

	assert.Equal(t, []string{"Presidential Suite"}, names(rooms))
}

func TestCheckAvailabilityOverlapPolicy(t *testing.T) {
	s := seeded(store.WithAvailabilityPolicy(store.OverlapPolicy))
	s.CreateBooking(bookingModel.Booking{
		RoomID:   4,
		CheckIn:  date("2024-06-01"),
		CheckOut: date("2024-06-04"),
		Guests:   5,
	})
	s.CreateBooking(bookingModel.Booking{
		RoomID:   2,
		CheckIn:  date("2024-06-01"),
		CheckOut: date("2024-06-04"),
		Status:   bookingModel.StatusCancelled,
	})

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     []string
	}{
		{name: "inside booked stay", checkIn: "2024-06-02", checkOut: "2024-06-03", want: []string{"Executive Suite", "Family Room"}},
		{name: "checks in on booked checkout", checkIn: "2024-06-04", checkOut: "2024-06-06", want: []string{"Executive Suite", "Presidential Suite", "Family Room"}},
		{name: "checks out on booked checkin", checkIn: "2024-05-28", checkOut: "2024-06-01", want: []string{"Executive Suite", "Presidential Suite", "Family Room"}},
		{name: "straddles booked checkin", checkIn: "2024-05-30", checkOut: "2024-06-02", want: []string{"Executive Suite", "Family Room"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := s.CheckAvailability(roomModel.AvailabilityCheck{
				CheckIn:  date(tt.checkIn),
				CheckOut: date(tt.checkOut),
				Guests:   4,
			})

			assert.Equal(t, tt.want, names(rooms))
		})
	}
}

func TestCheckAvailabilityIsIdempotent(t *testing.T) {
	s := seeded()
	check := roomModel.AvailabilityCheck{CheckIn: date("2024-06-01"), CheckOut: date("2024-06-04"), Guests: 3}

	assert.Equal(t, s.CheckAvailability(check), s.CheckAvailability(check))
	assert.Len(t, s.GetRooms(), 6)
}

func TestCreateBooking(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	s := seeded(store.WithClock(func() time.Time { return now }))

	first := s.CreateBooking(bookingModel.Booking{
		RoomID:     1,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		CheckIn:    date("2024-06-01"),
		CheckOut:   date("2024-06-04"),
		Guests:     2,
		TotalPrice: "897.00",
	})
	second := s.CreateBooking(bookingModel.Booking{RoomID: 999, TotalPrice: "1.5", Status: bookingModel.StatusCompleted})

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, bookingModel.StatusConfirmed, first.Status)
	assert.Equal(t, bookingModel.StatusCompleted, second.Status)
	assert.Equal(t, now, first.CreatedAt)

	stored, ok := s.GetBooking(1)
	require.True(t, ok)
	assert.Equal(t, first, stored)
	assert.Equal(t, "897.00", stored.TotalPrice)

	unknownRoom, ok := s.GetBooking(2)
	require.True(t, ok)
	assert.Equal(t, int64(999), unknownRoom.RoomID)
	assert.Equal(t, "1.5", unknownRoom.TotalPrice)

	_, ok = s.GetBooking(3)
	assert.False(t, ok)

	assert.Len(t, s.GetBookingsByRoom(1), 1)
	assert.Empty(t, s.GetBookingsByRoom(2))
}

func TestCreateContact(t *testing.T) {
	s := store.New()
	before := time.Now()

	contact := s.CreateContact(contactModel.Contact{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Subject:   "Late checkout",
		Message:   "Is a 2pm checkout possible?",
	})

	assert.Equal(t, int64(1), contact.ID)
	assert.False(t, contact.CreatedAt.Before(before))
	assert.Equal(t, []contactModel.Contact{contact}, s.GetContacts())
}

func TestUsers(t *testing.T) {
	s := store.New()

	first := s.CreateUser(userModel.User{Username: "frontdesk", Password: "hash-1"})
	second := s.CreateUser(userModel.User{Username: "frontdesk", Password: "hash-2"})

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	byName, ok := s.GetUserByUsername("frontdesk")
	require.True(t, ok)
	assert.Equal(t, first, byName)

	byID, ok := s.GetUser(2)
	require.True(t, ok)
	assert.Equal(t, "hash-2", byID.Password)

	_, ok = s.GetUserByUsername("concierge")
	assert.False(t, ok)

	_, ok = s.GetUser(3)
	assert.False(t, ok)
}

func TestReturnedRoomsDoNotAlias(t *testing.T) {
	s := seeded()

	room, _ := s.GetRoom(1)
	room.Amenities[0] = "Bunk Bed"
	room.Name = "Broom Closet"

	rooms := s.GetRooms()
	rooms[0].Amenities[1] = "Alley View"

	again, _ := s.GetRoom(1)
	assert.Equal(t, "Deluxe King Room", again.Name)
	assert.Equal(t, []string{"King Bed", "City View", "WiFi", "Room Service"}, again.Amenities)
}

func TestConcurrentCreatesYieldUniqueIDs(t *testing.T) {
	s := seeded()

	const workers = 50

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[int64]struct{}{}
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			booking := s.CreateBooking(bookingModel.Booking{RoomID: 1})
			s.CheckAvailability(roomModel.AvailabilityCheck{Guests: 1})

			mu.Lock()
			ids[booking.ID] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Len(t, ids, workers)
	assert.Len(t, s.GetBookingsByRoom(1), workers)

	for id := int64(1); id <= workers; id++ {
		assert.Contains(t, ids, id)
	}
}

func TestProvide(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Seed.Enable = true

	s := store.Provide(cfg)
	s.CreateBooking(bookingModel.Booking{RoomID: 4, CheckIn: date("2024-06-01"), CheckOut: date("2024-06-04")})

	check := roomModel.AvailabilityCheck{CheckIn: date("2024-06-02"), CheckOut: date("2024-06-03"), Guests: 5}
	assert.Len(t, s.CheckAvailability(check), 1)

	cfg.App.Availability.CheckOverlap = true
	s = store.Provide(cfg)
	s.CreateBooking(bookingModel.Booking{RoomID: 4, CheckIn: date("2024-06-01"), CheckOut: date("2024-06-04")})
	assert.Empty(t, s.CheckAvailability(check))

	assert.Empty(t, store.Provide(&config.Config{}).GetRooms())
}
