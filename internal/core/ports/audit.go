package ports

import (
	"context"
	"time"
)

// BookingEventType labels entries in the booking audit trail.
type BookingEventType string

const (
	EventBookingCreated BookingEventType = "booking_created"
	EventBookingDeleted BookingEventType = "booking_deleted"
	EventHotelDeleted   BookingEventType = "hotel_deleted"
)

// BookingEvent is a single audit-trail entry. HotelID is always set and is
// the sharding key for ordered async recording.
type BookingEvent struct {
	Type       BookingEventType
	BookingID  string
	HotelID    string
	UserEmail  string
	OccurredAt time.Time
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *BookingEvent) error
}

// AuditSink accepts events for asynchronous, best-effort recording.
// Implementations must never block the caller beyond queue capacity and must
// never surface recording failures to the business operation.
type AuditSink interface {
	Enqueue(event BookingEvent)
}
