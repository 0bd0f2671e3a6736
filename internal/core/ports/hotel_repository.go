package ports

import (
	"context"

	"github.com/stayease/booking-api/internal/core/domain"
)

// HotelRepository defines persistence operations for hotel records.
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	FindByID(ctx context.Context, id string) (*domain.Hotel, error)
	FindAll(ctx context.Context) ([]*domain.Hotel, error)
	Update(ctx context.Context, hotel *domain.Hotel) error
	Delete(ctx context.Context, id string) error
}
