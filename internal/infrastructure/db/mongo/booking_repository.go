package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayease/booking-api/internal/core/domain"
)

const collectionBookings = "bookings"

// BookingRepository implements ports.BookingRepository on MongoDB.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(collectionBookings)}
}

type mongoBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	HotelID   string             `bson:"hotel_id"`
	UserEmail string             `bson:"user_email"`
	CheckIn   time.Time          `bson:"check_in"`
	CheckOut  time.Time          `bson:"check_out"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mb *mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        mb.ID.Hex(),
		HotelID:   mb.HotelID,
		UserEmail: mb.UserEmail,
		CheckIn:   mb.CheckIn.UTC(),
		CheckOut:  mb.CheckOut.UTC(),
		CreatedAt: mb.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBooking{
		HotelID:   booking.HotelID,
		UserEmail: booking.UserEmail,
		CheckIn:   booking.CheckIn.UTC(),
		CheckOut:  booking.CheckOut.UTC(),
		CreatedAt: booking.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *booking
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	var mb mongoBooking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return mb.toDomain(), nil
}

// FindOverlapping applies the inclusive-boundary overlap test as a query:
// check_in <= checkOut AND check_out >= checkIn.
func (r *BookingRepository) FindOverlapping(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	filter := bson.M{
		"hotel_id":  hotelID,
		"check_in":  bson.M{"$lte": checkOut.UTC()},
		"check_out": bson.M{"$gte": checkIn.UTC()},
	}
	return r.find(ctx, filter)
}

func (r *BookingRepository) FindByHotel(ctx context.Context, hotelID string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"hotel_id": hotelID})
}

func (r *BookingRepository) FindByUserEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"user_email": email})
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Booking
	for cur.Next(ctx) {
		var mb mongoBooking
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		out = append(out, mb.toDomain())
	}
	return out, cur.Err()
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookingNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) DeleteByHotel(ctx context.Context, hotelID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"hotel_id": hotelID})
	if err != nil {
		return 0, fmt.Errorf("delete bookings by hotel: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the indexes backing the overlap and ownership queries.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "hotel_id", Value: 1}, {Key: "check_in", Value: 1}}},
		{Keys: bson.D{{Key: "user_email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
