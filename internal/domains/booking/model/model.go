package model

import (
	"errors"
	"math"
	"time"

	"hotel/shared/constant"
	"hotel/shared/timezone"
)

const (
	EntityName = "booking"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var ErrInvalidStay = errors.New("checkOut must be after checkIn")

type Booking struct {
	ID         int64
	RoomID     int64
	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice string
	Status     string
	CreatedAt  time.Time
}

// Overlaps uses half-open intervals: a stay checking out on the day another
// checks in does not collide with it.
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}

// Nights counts started days between check-in and check-out. Stays given as
// bare dates count calendar days, so a clock change inside the stay does not
// add a night.
func Nights(checkIn, checkOut time.Time) int {
	if isMidnight(checkIn) && isMidnight(checkOut) {
		checkIn, checkOut = calendarDay(checkIn), calendarDay(checkOut)
	}

	hours := checkOut.Sub(checkIn).Hours()

	return int(math.Ceil(hours / constant.HoursPerDay))
}

func isMidnight(t time.Time) bool {
	hour, minute, second := t.Clock()

	return hour == 0 && minute == 0 && second == 0 && t.Nanosecond() == 0
}

// calendarDay moves t's wall-clock date onto UTC, where every day is 24h.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseStay parses both ends of a stay and requires checkOut > checkIn.
func ParseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := timezone.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	out, err := timezone.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !out.After(in) {
		return time.Time{}, time.Time{}, ErrInvalidStay
	}

	return in, out, nil
}
