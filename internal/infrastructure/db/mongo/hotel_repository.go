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

const collectionHotels = "hotels"

// HotelRepository implements ports.HotelRepository on MongoDB.
type HotelRepository struct {
	coll *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{coll: db.Collection(collectionHotels)}
}

type mongoHotel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Location    string             `bson:"location"`
	Description string             `bson:"description"`
	TotalRooms  int                `bson:"total_rooms"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (mh *mongoHotel) toDomain() *domain.Hotel {
	return &domain.Hotel{
		ID:          mh.ID.Hex(),
		Name:        mh.Name,
		Location:    mh.Location,
		Description: mh.Description,
		TotalRooms:  mh.TotalRooms,
		CreatedAt:   mh.CreatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoHotel{
		Name:        hotel.Name,
		Location:    hotel.Location,
		Description: hotel.Description,
		TotalRooms:  hotel.TotalRooms,
		CreatedAt:   hotel.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}

	created := *hotel
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHotelNotFound
	}

	var mh mongoHotel
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mh); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return mh.toDomain(), nil
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Hotel
	for cur.Next(ctx) {
		var mh mongoHotel
		if err := cur.Decode(&mh); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		out = append(out, mh.toDomain())
	}
	return out, cur.Err()
}

func (r *HotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(hotel.ID)
	if err != nil {
		return domain.ErrHotelNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        hotel.Name,
		"location":    hotel.Location,
		"description": hotel.Description,
		"total_rooms": hotel.TotalRooms,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update hotel: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHotelNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}
