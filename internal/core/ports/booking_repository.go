package ports

import (
	"context"
	"time"

	"github.com/stayease/booking-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
//
// Back-references are computed, not maintained: a hotel's or user's booking
// list is always derived from FindByHotel / FindByUserEmail, so deleting a
// booking never requires a reciprocal update elsewhere.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindOverlapping returns the hotel's bookings whose stay conflicts with
	// [checkIn, checkOut] under the inclusive-boundary overlap test:
	// check_in <= checkOut AND check_out >= checkIn.
	FindOverlapping(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]*domain.Booking, error)
	FindByHotel(ctx context.Context, hotelID string) ([]*domain.Booking, error)
	FindByUserEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	// DeleteByHotel bulk-removes all bookings of a hotel and returns the count.
	DeleteByHotel(ctx context.Context, hotelID string) (int64, error)
}
