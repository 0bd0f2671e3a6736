package domain

import "errors"

var (
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrRoomUnavailable    = errors.New("no rooms available for the requested date range")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidDateRange   = errors.New("check-out date precedes check-in date")
	ErrInvalidRole        = errors.New("invalid role")
)
