package ports

import (
	"context"

	"github.com/stayease/booking-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email is the unique, case-sensitive lookup key.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
