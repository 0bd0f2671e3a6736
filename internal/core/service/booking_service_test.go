package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stayease/booking-api/internal/core/domain"
	"github.com/stayease/booking-api/internal/core/ports"
)

type bookingFixture struct {
	svc      *BookingService
	users    *stubUserRepo
	hotels   *stubHotelRepo
	bookings *stubBookingRepo
	sink     *recordingSink
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		users:    newStubUserRepo(),
		hotels:   newStubHotelRepo(),
		bookings: newStubBookingRepo(),
		sink:     &recordingSink{},
	}
	f.svc = NewBookingService(f.bookings, f.hotels, f.users, NewKeyedMutex(), f.sink, zerolog.Nop())
	return f
}

func (f *bookingFixture) seedHotel(totalRooms int) *domain.Hotel {
	h, _ := f.hotels.Create(context.Background(), &domain.Hotel{Name: "Grand Plaza", TotalRooms: totalRooms})
	return h
}

func (f *bookingFixture) seedUser(email string) *domain.User {
	u, _ := f.users.Create(context.Background(), &domain.User{Email: email, Role: domain.RoleCustomer})
	return u
}

func TestBookingService_Book_Success(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)
	f.seedUser("guest@example.com")

	view, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if view.HotelName != "Grand Plaza" || view.UserEmail != "guest@example.com" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if len(f.sink.events) != 1 || f.sink.events[0].Type != ports.EventBookingCreated {
		t.Fatalf("expected one booking_created audit event, got %+v", f.sink.events)
	}
}

func TestBookingService_Book_CapacityExhausted(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)
	f.seedUser("guest@example.com")

	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Overlapping range on a one-room hotel must be rejected.
	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-03"), CheckOut: day("2024-01-06"),
	}); err != domain.ErrRoomUnavailable {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}
}

func TestBookingService_Book_TouchingBoundaryRejected(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)
	f.seedUser("guest@example.com")

	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// A stay starting on the previous booking's checkout day still conflicts
	// under the inclusive overlap test.
	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-05"), CheckOut: day("2024-01-10"),
	}); err != domain.ErrRoomUnavailable {
		t.Fatalf("expected ErrRoomUnavailable at boundary, got %v", err)
	}
}

func TestBookingService_Book_DisjointRangesShareRoom(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)
	f.seedUser("guest@example.com")

	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-06"), CheckOut: day("2024-01-10"),
	}); err != nil {
		t.Fatalf("disjoint booking should succeed: %v", err)
	}
}

func TestBookingService_Book_ZeroLengthStay(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)
	f.seedUser("guest@example.com")

	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-01"),
	}); err != nil {
		t.Fatalf("zero-length stay on empty hotel should succeed: %v", err)
	}
}

func TestBookingService_Book_ReversedRange(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)
	f.seedUser("guest@example.com")

	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-05"), CheckOut: day("2024-01-01"),
	}); err != domain.ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestBookingService_Book_HotelNotFound(t *testing.T) {
	f := newBookingFixture()
	f.seedUser("guest@example.com")

	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: "missing", UserEmail: "guest@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	}); err != domain.ErrHotelNotFound {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)

	if _, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "ghost@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestBookingService_Book_CapacityNeverExceeded(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(3)
	f.seedUser("guest@example.com")

	admitted := 0
	for i := 0; i < 10; i++ {
		_, err := f.svc.Book(context.Background(), ports.BookRoomInput{
			HotelID: hotel.ID, UserEmail: "guest@example.com",
			CheckIn: day("2024-02-01"), CheckOut: day("2024-02-10"),
		})
		if err == nil {
			admitted++
		} else if err != domain.ErrRoomUnavailable {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if admitted != 3 {
		t.Fatalf("admitted %d overlapping bookings on a 3-room hotel", admitted)
	}
}

func TestBookingService_FindByID(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)
	f.seedUser("guest@example.com")

	created, err := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	view, err := f.svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if view.HotelName != "Grand Plaza" || !view.CheckIn.Equal(day("2024-01-01")) {
		t.Fatalf("unexpected view: %+v", view)
	}

	if _, err := f.svc.FindByID(context.Background(), "missing"); err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingService_Delete(t *testing.T) {
	f := newBookingFixture()
	hotel := f.seedHotel(1)
	f.seedUser("guest@example.com")

	created, _ := f.svc.Book(context.Background(), ports.BookRoomInput{
		HotelID: hotel.ID, UserEmail: "guest@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	})

	if err := f.svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.bookings.FindByID(context.Background(), created.ID); err != domain.ErrBookingNotFound {
		t.Fatalf("booking should be gone, got %v", err)
	}
	if f.sink.events[len(f.sink.events)-1].Type != ports.EventBookingDeleted {
		t.Fatalf("expected booking_deleted audit event")
	}

	if err := f.svc.Delete(context.Background(), created.ID); err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
