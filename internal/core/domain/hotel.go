package domain

import "time"

// Hotel is a bookable property with a single room pool. TotalRooms caps the
// number of bookings whose date ranges overlap at any point in time.
type Hotel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	TotalRooms  int       `json:"total_rooms"`
	CreatedAt   time.Time `json:"created_at"`
}
