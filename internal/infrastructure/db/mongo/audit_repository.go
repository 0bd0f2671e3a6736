package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayease/booking-api/internal/core/ports"
)

const collectionAudit = "booking_events"

// AuditRepository persists booking audit events to the booking_events collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(collectionAudit)}
}

func (r *AuditRepository) Insert(ctx context.Context, event *ports.BookingEvent) error {
	doc := bson.M{
		"type":        string(event.Type),
		"hotel_id":    event.HotelID,
		"occurred_at": event.OccurredAt.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.BookingID != "" {
		doc["booking_id"] = event.BookingID
	}
	if event.UserEmail != "" {
		doc["user_email"] = event.UserEmail
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
