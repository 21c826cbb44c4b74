// Package store keeps every entity of the booking site in process memory.
// All reads and writes are serialized through one RWMutex; callers always
// receive copies, never references into the arenas.
package store

import (
	"slices"
	"sync"
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	contactModel "hotel/internal/domains/contact/model"
	roomModel "hotel/internal/domains/room/model"
	userModel "hotel/internal/domains/user/model"
	"hotel/shared/timezone"
)

// AvailabilityPolicy decides whether room may be offered for check. bookings
// holds every booking recorded against the room.
type AvailabilityPolicy func(room roomModel.Room, check roomModel.AvailabilityCheck, bookings []bookingModel.Booking) bool

// CapacityPolicy offers every available room large enough for the party.
// Dates are ignored.
func CapacityPolicy(room roomModel.Room, check roomModel.AvailabilityCheck, _ []bookingModel.Booking) bool {
	return room.Fits(check.Guests)
}

// OverlapPolicy is CapacityPolicy that additionally rejects rooms holding a
// confirmed booking which intersects the requested stay.
func OverlapPolicy(room roomModel.Room, check roomModel.AvailabilityCheck, bookings []bookingModel.Booking) bool {
	if !CapacityPolicy(room, check, bookings) {
		return false
	}

	for _, booking := range bookings {
		if booking.Status == bookingModel.StatusConfirmed && booking.Overlaps(check.CheckIn, check.CheckOut) {
			return false
		}
	}

	return true
}

type Option func(*Store)

func WithAvailabilityPolicy(policy AvailabilityPolicy) Option {
	return func(s *Store) {
		if policy != nil {
			s.policy = policy
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store holds one arena per entity. Ids are position+1 in the arena and are
// never reused.
type Store struct {
	mu sync.RWMutex

	users    []userModel.User
	rooms    []roomModel.Room
	bookings []bookingModel.Booking
	contacts []contactModel.Contact

	policy AvailabilityPolicy
	now    func() time.Time
}

func New(opts ...Option) *Store {
	s := &Store{
		policy: CapacityPolicy,
		now:    timezone.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) GetUser(id int64) (userModel.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.users, id)
}

// GetUserByUsername returns the earliest user registered under username.
func (s *Store) GetUserByUsername(username string) (userModel.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}

	return userModel.User{}, false
}

// CreateUser does not enforce username uniqueness.
func (s *Store) CreateUser(user userModel.User) userModel.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = int64(len(s.users)) + 1
	s.users = append(s.users, user)

	return user
}

// GetRooms returns rooms in id order.
func (s *Store) GetRooms() []roomModel.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]roomModel.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, cloneRoom(room))
	}

	return rooms
}

// GetRoomsByCategory matches category exactly; an unknown category yields an
// empty list.
func (s *Store) GetRoomsByCategory(category string) []roomModel.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := []roomModel.Room{}
	for _, room := range s.rooms {
		if room.Category == category {
			rooms = append(rooms, cloneRoom(room))
		}
	}

	return rooms
}

func (s *Store) GetRoom(id int64) (roomModel.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := lookup(s.rooms, id)

	return cloneRoom(room), ok
}

func (s *Store) CreateRoom(room roomModel.Room) roomModel.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	room = cloneRoom(room)
	room.ID = int64(len(s.rooms)) + 1
	s.rooms = append(s.rooms, room)

	return cloneRoom(room)
}

// CreateBooking stamps id, createdAt and a default status. The room id is
// stored as given.
func (s *Store) CreateBooking(booking bookingModel.Booking) bookingModel.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = int64(len(s.bookings)) + 1
	booking.CreatedAt = s.now()

	if booking.Status == "" {
		booking.Status = bookingModel.StatusConfirmed
	}

	s.bookings = append(s.bookings, booking)

	return booking
}

func (s *Store) GetBooking(id int64) (bookingModel.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.bookings, id)
}

func (s *Store) GetBookingsByRoom(roomID int64) []bookingModel.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bookingsByRoom(roomID)
}

func (s *Store) CreateContact(contact contactModel.Contact) contactModel.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = int64(len(s.contacts)) + 1
	contact.CreatedAt = s.now()
	s.contacts = append(s.contacts, contact)

	return contact
}

func (s *Store) GetContacts() []contactModel.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.contacts)
}

// CheckAvailability returns, in id order, the rooms the configured policy
// accepts for check.
func (s *Store) CheckAvailability(check roomModel.AvailabilityCheck) []roomModel.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := []roomModel.Room{}
	for _, room := range s.rooms {
		if s.policy(room, check, s.bookingsByRoom(room.ID)) {
			rooms = append(rooms, cloneRoom(room))
		}
	}

	return rooms
}

// bookingsByRoom expects s.mu to be held.
func (s *Store) bookingsByRoom(roomID int64) []bookingModel.Booking {
	bookings := []bookingModel.Booking{}
	for _, booking := range s.bookings {
		if booking.RoomID == roomID {
			bookings = append(bookings, booking)
		}
	}

	return bookings
}

func lookup[T any](arena []T, id int64) (T, bool) {
	var zero T
	if id < 1 || id > int64(len(arena)) {
		return zero, false
	}

	return arena[id-1], true
}

func cloneRoom(room roomModel.Room) roomModel.Room {
	room.Amenities = slices.Clone(room.Amenities)

	return room
}
