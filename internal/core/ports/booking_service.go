package ports

import (
	"context"
	"time"
)

// BookRoomInput carries a room reservation request. UserEmail is the token
// subject of the requester, never client-supplied.
type BookRoomInput struct {
	HotelID   string
	UserEmail string
	CheckIn   time.Time
	CheckOut  time.Time
}

// BookingView is the assembled response view of a booking.
type BookingView struct {
	ID        string
	HotelID   string
	HotelName string
	UserEmail string
	CheckIn   time.Time
	CheckOut  time.Time
}

// BookingService defines the booking admission use cases.
type BookingService interface {
	// Book admits a reservation when the hotel has capacity for the requested
	// date range, serializing the availability check and insert per hotel.
	Book(ctx context.Context, input BookRoomInput) (*BookingView, error)
	FindByID(ctx context.Context, id string) (*BookingView, error)
	Delete(ctx context.Context, id string) error
}
