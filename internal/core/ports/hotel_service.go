package ports

import "context"

// CreateHotelInput carries the data needed to register a hotel.
type CreateHotelInput struct {
	Name        string
	Location    string
	Description string
	TotalRooms  int
}

// UpdateHotelInput carries a partial update: nil fields are left untouched.
type UpdateHotelInput struct {
	Name        *string
	Location    *string
	Description *string
	TotalRooms  *int
}

// HotelView is the read projection of a hotel. AvailableRooms mirrors the
// total room count; BookingIDs is computed by query.
type HotelView struct {
	ID             string
	Name           string
	Location       string
	Description    string
	AvailableRooms int
	BookingIDs     []string
}

// HotelService defines hotel inventory use cases. Delete cascades to the
// hotel's bookings.
type HotelService interface {
	Create(ctx context.Context, input CreateHotelInput) (*HotelView, error)
	Update(ctx context.Context, id string, input UpdateHotelInput) (*HotelView, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*HotelView, error)
	GetByID(ctx context.Context, id string) (*HotelView, error)
}
