package store

import (
	roomModel "hotel/internal/domains/room/model"
)

const imageQuery = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + imageQuery
}

// Rooms is the catalogue a fresh store is populated with, in id order.
func Rooms() []roomModel.Room {
	return []roomModel.Room{
		{
			Name:        "Deluxe King Room",
			Description: "Spacious room with king bed, city views, and luxury amenities",
			Price:       "299.00",
			Category:    roomModel.CategoryDeluxe,
			MaxGuests:   2,
			Amenities:   []string{"King Bed", "City View", "WiFi", "Room Service"},
			ImageURL:    unsplash("photo-1631049307264-da0ec9d70304"),
			Available:   true,
		},
		{
			Name:        "Executive Suite",
			Description: "Luxurious suite with separate living area and premium amenities",
			Price:       "459.00",
			Category:    roomModel.CategorySuite,
			MaxGuests:   4,
			Amenities:   []string{"Suite", "Living Room", "Balcony", "Premium WiFi"},
			ImageURL:    unsplash("photo-1578683010236-d716f9a3f461"),
			Available:   true,
		},
		{
			Name:        "Ocean View Room",
			Description: "Breathtaking ocean views with premium comfort and style",
			Price:       "389.00",
			Category:    roomModel.CategoryPremium,
			MaxGuests:   2,
			Amenities:   []string{"Ocean View", "Queen Bed", "Marble Bath", "Mini Bar"},
			ImageURL:    unsplash("photo-1582719478250-c89cae4dc85b"),
			Available:   true,
		},
		{
			Name:        "Presidential Suite",
			Description: "Ultimate luxury with dining area, fireplace, and butler service",
			Price:       "899.00",
			Category:    roomModel.CategorySuite,
			MaxGuests:   6,
			Amenities:   []string{"2 Bedrooms", "Butler Service", "Fireplace", "Dining Area"},
			ImageURL:    unsplash("photo-1596394516093-501ba68a0ba6"),
			Available:   true,
		},
		{
			Name:        "Business Twin Room",
			Description: "Perfect for business travelers with work desk and meeting space",
			Price:       "259.00",
			Category:    roomModel.CategoryDeluxe,
			MaxGuests:   2,
			Amenities:   []string{"Twin Beds", "Work Desk", "High-Speed WiFi", "Business Center Access"},
			ImageURL:    unsplash("photo-1551882547-ff40c63fe5fa"),
			Available:   true,
		},
		{
			Name:        "Family Room",
			Description: "Spacious family accommodation with connecting rooms available",
			Price:       "359.00",
			Category:    roomModel.CategoryFamily,
			MaxGuests:   4,
			Amenities:   []string{"2 Queen Beds", "Kid-Friendly", "Extra Space", "Family Amenities"},
			ImageURL:    unsplash("photo-1484154218962-a197022b5858"),
			Available:   true,
		},
	}
}

// Seed inserts the catalogue. Called once on a fresh store it yields ids 1-6.
func Seed(s *Store) {
	for _, room := range Rooms() {
		s.CreateRoom(room)
	}
}
