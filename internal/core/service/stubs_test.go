package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stayease/booking-api/internal/core/domain"
	"github.com/stayease/booking-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared across service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byID[clone.ID] = &clone
	copied := clone
	return &copied, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

type stubHotelRepo struct {
	byID   map[string]*domain.Hotel
	nextID int
}

func newStubHotelRepo() *stubHotelRepo {
	return &stubHotelRepo{byID: make(map[string]*domain.Hotel)}
}

func (r *stubHotelRepo) Create(_ context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	r.nextID++
	clone := *hotel
	clone.ID = fmt.Sprintf("hotel_%d", r.nextID)
	r.byID[clone.ID] = &clone
	copied := clone
	return &copied, nil
}

func (r *stubHotelRepo) FindByID(_ context.Context, id string) (*domain.Hotel, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrHotelNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *stubHotelRepo) FindAll(_ context.Context) ([]*domain.Hotel, error) {
	out := make([]*domain.Hotel, 0, len(r.byID))
	for _, h := range r.byID {
		clone := *h
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubHotelRepo) Update(_ context.Context, hotel *domain.Hotel) error {
	if _, ok := r.byID[hotel.ID]; !ok {
		return domain.ErrHotelNotFound
	}
	clone := *hotel
	r.byID[hotel.ID] = &clone
	return nil
}

func (r *stubHotelRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrHotelNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubBookingRepo struct {
	byID   map[string]*domain.Booking
	nextID int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	clone := *booking
	clone.ID = fmt.Sprintf("booking_%d", r.nextID)
	r.byID[clone.ID] = &clone
	copied := clone
	return &copied, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

// FindOverlapping mirrors the Mongo query: inclusive boundaries on both ends.
func (r *stubBookingRepo) FindOverlapping(_ context.Context, hotelID string, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.HotelID == hotelID && b.Overlaps(checkIn, checkOut) {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindByHotel(_ context.Context, hotelID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.HotelID == hotelID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindByUserEmail(_ context.Context, email string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.UserEmail == email {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubBookingRepo) DeleteByHotel(_ context.Context, hotelID string) (int64, error) {
	var n int64
	for id, b := range r.byID {
		if b.HotelID == hotelID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

// recordingSink captures audit events synchronously for assertions.
type recordingSink struct {
	events []ports.BookingEvent
}

func (s *recordingSink) Enqueue(event ports.BookingEvent) {
	s.events = append(s.events, event)
}
