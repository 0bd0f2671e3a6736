package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayease/booking-api/internal/core/domain"
	"github.com/stayease/booking-api/internal/core/ports"
)

// BookingService decides room admission and manages the booking lifecycle.
type BookingService struct {
	bookings ports.BookingRepository
	hotels   ports.HotelRepository
	users    ports.UserRepository
	locks    HotelLocker
	audit    ports.AuditSink
	logger   zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	hotels ports.HotelRepository,
	users ports.UserRepository,
	locks HotelLocker,
	audit ports.AuditSink,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		hotels:   hotels,
		users:    users,
		locks:    locks,
		audit:    audit,
		logger:   logger,
	}
}

// Book admits a reservation when the hotel has a room free across the
// requested date range. The overlap count and the insert run under a
// per-hotel lock so two concurrent requests at the capacity boundary cannot
// both observe a free room. A zero-length stay (check-in == check-out) is
// accepted; only a reversed range is rejected.
func (s *BookingService) Book(ctx context.Context, input ports.BookRoomInput) (*ports.BookingView, error) {
	if input.CheckOut.Before(input.CheckIn) {
		return nil, domain.ErrInvalidDateRange
	}

	release, err := s.locks.Acquire(ctx, input.HotelID)
	if err != nil {
		return nil, fmt.Errorf("acquire hotel lock: %w", err)
	}
	defer release()

	hotel, err := s.hotels.FindByID(ctx, input.HotelID)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.bookings.FindOverlapping(ctx, hotel.ID, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("count overlapping bookings: %w", err)
	}
	if len(overlapping) >= hotel.TotalRooms {
		s.logger.Warn().
			Str("hotel_id", hotel.ID).
			Int("overlapping", len(overlapping)).
			Int("total_rooms", hotel.TotalRooms).
			Msg("booking rejected, no rooms available")
		return nil, domain.ErrRoomUnavailable
	}

	user, err := s.users.FindByEmail(ctx, input.UserEmail)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		HotelID:   hotel.ID,
		UserEmail: user.Email,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	s.audit.Enqueue(ports.BookingEvent{
		Type:       ports.EventBookingCreated,
		BookingID:  created.ID,
		HotelID:    hotel.ID,
		UserEmail:  user.Email,
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("hotel_id", hotel.ID).
		Str("user_email", user.Email).
		Msg("room booked")

	return &ports.BookingView{
		ID:        created.ID,
		HotelID:   hotel.ID,
		HotelName: hotel.Name,
		UserEmail: user.Email,
		CheckIn:   created.CheckIn,
		CheckOut:  created.CheckOut,
	}, nil
}

// FindByID returns the assembled booking view.
func (s *BookingService) FindByID(ctx context.Context, id string) (*ports.BookingView, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hotel, err := s.hotels.FindByID(ctx, booking.HotelID)
	if err != nil {
		return nil, err
	}

	return &ports.BookingView{
		ID:        booking.ID,
		HotelID:   hotel.ID,
		HotelName: hotel.Name,
		UserEmail: booking.UserEmail,
		CheckIn:   booking.CheckIn,
		CheckOut:  booking.CheckOut,
	}, nil
}

// Delete removes a single booking.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, booking.ID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.audit.Enqueue(ports.BookingEvent{
		Type:       ports.EventBookingDeleted,
		BookingID:  booking.ID,
		HotelID:    booking.HotelID,
		UserEmail:  booking.UserEmail,
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info().Str("booking_id", booking.ID).Msg("booking deleted")
	return nil
}
