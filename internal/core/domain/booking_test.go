package domain

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{CheckIn: day("2024-01-01"), CheckOut: day("2024-01-05")}

	cases := []struct {
		name     string
		in, out  string
		overlaps bool
	}{
		{"contained", "2024-01-02", "2024-01-03", true},
		{"straddles start", "2023-12-30", "2024-01-01", true},
		{"straddles end", "2024-01-03", "2024-01-06", true},
		{"touches checkout boundary", "2024-01-05", "2024-01-10", true},
		{"touches checkin boundary", "2023-12-28", "2024-01-01", true},
		{"fully before", "2023-12-20", "2023-12-31", false},
		{"fully after", "2024-01-06", "2024-01-08", false},
		{"zero-length inside", "2024-01-03", "2024-01-03", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Overlaps(day(tc.in), day(tc.out)); got != tc.overlaps {
				t.Fatalf("Overlaps(%s, %s) = %v, want %v", tc.in, tc.out, got, tc.overlaps)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(""); err != nil || r != RoleCustomer {
		t.Fatalf("empty role: got %q, %v", r, err)
	}
	if r, err := ParseRole("HOTEL_MANAGER"); err != nil || r != RoleHotelManager {
		t.Fatalf("manager role: got %q, %v", r, err)
	}
	if _, err := ParseRole("hotel_manager"); err != ErrInvalidRole {
		t.Fatalf("lowercase role should be rejected, got %v", err)
	}
	if _, err := ParseRole("SUPERUSER"); err != ErrInvalidRole {
		t.Fatalf("unknown role should be rejected, got %v", err)
	}
}
