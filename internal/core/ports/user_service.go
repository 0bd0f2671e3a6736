package ports

import (
	"context"

	"github.com/stayease/booking-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.Role
}

// UserView is the read projection of a user. BookingIDs is computed by query.
type UserView struct {
	ID         string
	Name       string
	Email      string
	BookingIDs []string
}

// UserService defines account use cases. Register and Login return a signed
// bearer token on success.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	// GetByID enforces the ownership predicate: requesterEmail must equal the
	// target user's email or the call fails with domain.ErrForbidden.
	GetByID(ctx context.Context, id, requesterEmail string) (*UserView, error)
}
