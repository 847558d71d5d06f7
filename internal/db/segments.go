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

// SegmentCollection defines the interface for travel segment store
// operations. Segments have no lifecycle independent of their trip.
type SegmentCollection interface {
	Insert(ctx context.Context, segment models.TravelSegment) error
	FindByID(ctx context.Context, id string) (*models.TravelSegment, error)
	FindByTrip(ctx context.Context, tripID string, p pagination.Params) ([]models.TravelSegment, int64, error)
	Update(ctx context.Context, segment models.TravelSegment) error
	Delete(ctx context.Context, id string) error
	DeleteByTrip(ctx context.Context, tripID string) (int64, error)
}

// MongoSegmentCollection implements SegmentCollection for MongoDB.
type MongoSegmentCollection struct {
	Collection *mongo.Collection
}

// Insert stores a new segment document.
func (c *MongoSegmentCollection) Insert(ctx context.Context, segment models.TravelSegment) error {
	_, err := c.Collection.InsertOne(ctx, segment)
	return err
}

// FindByID finds a segment by id.
func (c *MongoSegmentCollection) FindByID(ctx context.Context, id string) (*models.TravelSegment, error) {
	var segment models.TravelSegment
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&segment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &segment, nil
}

// FindByTrip lists a trip's segments ordered by start date ascending. The
// order is applied at query time for display; it is not persisted.
func (c *MongoSegmentCollection) FindByTrip(ctx context.Context, tripID string, p pagination.Params) ([]models.TravelSegment, int64, error) {
	filter := bson.M{"trip_id": tripID}

	total, err := c.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit())
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var segments []models.TravelSegment
	if err := cursor.All(ctx, &segments); err != nil {
		return nil, 0, err
	}
	return segments, total, nil
}

// Update overwrites the stored segment with the same id.
func (c *MongoSegmentCollection) Update(ctx context.Context, segment models.TravelSegment) error {
	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": segment.ID}, segment)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a segment by id.
func (c *MongoSegmentCollection) Delete(ctx context.Context, id string) error {
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByTrip removes every segment of a trip in one store call, so a trip
// delete cannot strand a partially deleted segment list.
func (c *MongoSegmentCollection) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	result, err := c.Collection.DeleteMany(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
