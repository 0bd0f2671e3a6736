package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stayease/booking-api/internal/core/domain"
	"github.com/stayease/booking-api/internal/core/ports"
)

func newUserService(users *stubUserRepo, bookings *stubBookingRepo) (*UserService, *TokenProvider) {
	tokens := NewTokenProvider("secret", time.Hour)
	svc := NewUserService(users, bookings, tokens, zerolog.Nop())
	return svc, tokens
}

func TestUserService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newUserService(users, newStubBookingRepo())

	token, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Password: "Passw0rd!",
		Role: domain.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !tokens.Validate(token) {
		t.Fatalf("register should return a valid token")
	}
	if tokens.Subject(token) != "ada@example.com" {
		t.Fatalf("token subject = %q", tokens.Subject(token))
	}

	stored, err := users.FindByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "Passw0rd!" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Passw0rd!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Register_DefaultsToCustomer(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newUserService(users, newStubBookingRepo())

	token, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Bob", LastName: "B",
		Email: "bob@example.com", Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := tokens.RoleClaim(token); got != "CUSTOMER" {
		t.Fatalf("default role claim = %q, want CUSTOMER", got)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newUserService(users, newStubBookingRepo())

	in := ports.RegisterInput{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "Passw0rd!"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newUserService(users, newStubBookingRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "A", LastName: "B", Email: "a@b.com", Password: "goodpass1!",
	})

	if _, err := svc.Login(context.Background(), "a@b.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UnknownEmailDoesNotLeak(t *testing.T) {
	svc, _ := newUserService(newStubUserRepo(), newStubBookingRepo())

	// An unknown email must fail with the same error as a wrong password.
	if _, err := svc.Login(context.Background(), "ghost@b.com", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newUserService(users, newStubBookingRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "A", LastName: "B", Email: "a@b.com", Password: "goodpass1!",
		Role: domain.RoleHotelManager,
	})

	token, err := svc.Login(context.Background(), "a@b.com", "goodpass1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := tokens.RoleClaim(token); got != "HOTEL_MANAGER" {
		t.Fatalf("role claim = %q, want HOTEL_MANAGER", got)
	}
}

func TestUserService_GetByID_OwnershipEnforced(t *testing.T) {
	users := newStubUserRepo()
	bookings := newStubBookingRepo()
	svc, _ := newUserService(users, bookings)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "Passw0rd!",
	})
	stored, _ := users.FindByEmail(context.Background(), "ada@example.com")

	if _, err := svc.GetByID(context.Background(), stored.ID, "intruder@example.com"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	_, _ = bookings.Create(context.Background(), &domain.Booking{
		HotelID: "hotel_1", UserEmail: "ada@example.com",
		CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05"),
	})

	view, err := svc.GetByID(context.Background(), stored.ID, "ada@example.com")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if view.Name != "Ada Lovelace" {
		t.Fatalf("view name = %q", view.Name)
	}
	if len(view.BookingIDs) != 1 {
		t.Fatalf("expected 1 booking id, got %d", len(view.BookingIDs))
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, _ := newUserService(newStubUserRepo(), newStubBookingRepo())
	if _, err := svc.GetByID(context.Background(), "missing", "a@b.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
