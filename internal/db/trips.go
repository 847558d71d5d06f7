package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShaydeNofziger/skynav-api/internal/models"
	"github.com/ShaydeNofziger/skynav-api/internal/pagination"
)

// TripCollection defines the interface for trip store operations.
type TripCollection interface {
	Insert(ctx context.Context, trip models.Trip) error
	FindByID(ctx context.Context, id string) (*models.Trip, error)
	FindByOwner(ctx context.Context, ownerID string, p pagination.Params) ([]models.Trip, int64, error)
	Update(ctx context.Context, trip models.Trip) error
	Delete(ctx context.Context, id string) error
}

// MongoTripCollection implements TripCollection for MongoDB.
type MongoTripCollection struct {
	Collection *mongo.Collection
}

// Insert stores a new trip document.
func (c *MongoTripCollection) Insert(ctx context.Context, trip models.Trip) error {
	_, err := c.Collection.InsertOne(ctx, trip)
	return err
}

// FindByID finds a trip by id.
func (c *MongoTripCollection) FindByID(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// FindByOwner lists a user's trips, newest start date first.
func (c *MongoTripCollection) FindByOwner(ctx context.Context, ownerID string, p pagination.Params) ([]models.Trip, int64, error) {
	filter := bson.M{"owner_id": ownerID}

	total, err := c.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit())
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

// Update overwrites the stored trip with the same id.
func (c *MongoTripCollection) Update(ctx context.Context, trip models.Trip) error {
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": trip.ID}, trip)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a trip by id. Segment cleanup is the caller's job via
// SegmentCollection.DeleteByTrip.
func (c *MongoTripCollection) Delete(ctx context.Context, id string) error {
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
