package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayease/booking-api/internal/core/domain"
	"github.com/stayease/booking-api/internal/core/ports"
)

// HotelService manages hotel inventory metadata and the delete cascade.
type HotelService struct {
	hotels   ports.HotelRepository
	bookings ports.BookingRepository
	audit    ports.AuditSink
	logger   zerolog.Logger
}

func NewHotelService(hotels ports.HotelRepository, bookings ports.BookingRepository, audit ports.AuditSink, logger zerolog.Logger) *HotelService {
	return &HotelService{hotels: hotels, bookings: bookings, audit: audit, logger: logger}
}

// Create persists a hotel. No uniqueness constraint on name or location.
func (s *HotelService) Create(ctx context.Context, input ports.CreateHotelInput) (*ports.HotelView, error) {
	hotel := &domain.Hotel{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		TotalRooms:  input.TotalRooms,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.hotels.Create(ctx, hotel)
	if err != nil {
		return nil, fmt.Errorf("persist hotel: %w", err)
	}

	s.logger.Info().Str("hotel_id", created.ID).Str("name", created.Name).Msg("hotel created")
	return s.view(ctx, created)
}

// Update applies a partial update: nil fields keep their current value.
func (s *HotelService) Update(ctx context.Context, id string, input ports.UpdateHotelInput) (*ports.HotelView, error) {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		hotel.Name = *input.Name
	}
	if input.Location != nil {
		hotel.Location = *input.Location
	}
	if input.Description != nil {
		hotel.Description = *input.Description
	}
	if input.TotalRooms != nil {
		hotel.TotalRooms = *input.TotalRooms
	}

	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	s.logger.Info().Str("hotel_id", hotel.ID).Msg("hotel updated")
	return s.view(ctx, hotel)
}

// Delete removes a hotel and cascades to all its bookings. Booking lists on
// the user side are query-derived, so no reciprocal update is needed.
func (s *HotelService) Delete(ctx context.Context, id string) error {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		return err
	}

	bookings, err := s.bookings.FindByHotel(ctx, hotel.ID)
	if err != nil {
		return fmt.Errorf("list hotel bookings: %w", err)
	}

	removed, err := s.bookings.DeleteByHotel(ctx, hotel.ID)
	if err != nil {
		return fmt.Errorf("cascade delete bookings: %w", err)
	}

	if err := s.hotels.Delete(ctx, hotel.ID); err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}

	now := time.Now().UTC()
	for _, b := range bookings {
		s.audit.Enqueue(ports.BookingEvent{
			Type:       ports.EventBookingDeleted,
			BookingID:  b.ID,
			HotelID:    hotel.ID,
			UserEmail:  b.UserEmail,
			OccurredAt: now,
		})
	}
	s.audit.Enqueue(ports.BookingEvent{
		Type:       ports.EventHotelDeleted,
		HotelID:    hotel.ID,
		OccurredAt: now,
	})

	s.logger.Info().
		Str("hotel_id", hotel.ID).
		Int64("bookings_removed", removed).
		Msg("hotel deleted with cascade")
	return nil
}

// GetAll returns views for every hotel.
func (s *HotelService) GetAll(ctx context.Context) ([]*ports.HotelView, error) {
	hotels, err := s.hotels.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.HotelView, 0, len(hotels))
	for _, h := range hotels {
		v, err := s.view(ctx, h)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// GetByID returns a single hotel view.
func (s *HotelService) GetByID(ctx context.Context, id string) (*ports.HotelView, error) {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, hotel)
}

func (s *HotelService) view(ctx context.Context, hotel *domain.Hotel) (*ports.HotelView, error) {
	bookings, err := s.bookings.FindByHotel(ctx, hotel.ID)
	if err != nil {
		return nil, fmt.Errorf("list hotel bookings: %w", err)
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	return &ports.HotelView{
		ID:             hotel.ID,
		Name:           hotel.Name,
		Location:       hotel.Location,
		Description:    hotel.Description,
		AvailableRooms: hotel.TotalRooms,
		BookingIDs:     ids,
	}, nil
}
