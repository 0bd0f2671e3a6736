package domain

import "time"

// Role is the closed set of access levels a user can hold. Free-form role
// strings are parsed only at the HTTP edge and inside token claims.
type Role string

const (
	RoleCustomer     Role = "CUSTOMER"
	RoleHotelManager Role = "HOTEL_MANAGER"
	RoleAdmin        Role = "ADMIN"
)

// ParseRole converts a raw string into a Role. An empty string defaults to
// CUSTOMER, matching registration behaviour when no role is supplied.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleCustomer, nil
	case RoleCustomer, RoleHotelManager, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models a registered account. PasswordHash is an opaque bcrypt hash;
// the plaintext never leaves the registration/login path.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName joins first and last name for response views.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
