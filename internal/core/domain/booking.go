package domain

import "time"

// Booking reserves one room of a hotel for a date range. Dates are calendar
// days stored at UTC midnight.
type Booking struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotel_id"`
	UserEmail string    `json:"user_email"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

// Overlaps reports whether the booking's stay conflicts with [checkIn, checkOut].
// Boundaries are inclusive: a stay ending on a given day still occupies the
// room on that day, so checkIn <= b.CheckOut && checkOut >= b.CheckIn.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !checkIn.After(b.CheckOut) && !checkOut.Before(b.CheckIn)
}
