package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShaydeNofziger/skynav-api/internal/models"
	"github.com/ShaydeNofziger/skynav-api/internal/pagination"
)

// GeoQuery asks for dropzones near a point, at most MaxDistanceMeters away.
type GeoQuery struct {
	Longitude         float64
	Latitude          float64
	MaxDistanceMeters float64
}

// DropZoneQuery are the list-query inputs. The default filter excludes
// inactive dropzones; point reads bypass this filter.
type DropZoneQuery struct {
	IncludeInactive bool
	Near            *GeoQuery
	Page            pagination.Params
}

// DropZoneHit is one list result. DistanceMeters is set only for proximity
// queries.
type DropZoneHit struct {
	DropZone       models.DropZone
	DistanceMeters *float64
}

// DropZoneCollection defines the interface for dropzone store operations.
type DropZoneCollection interface {
	Upsert(ctx context.Context, dz models.DropZone) error
	FindByID(ctx context.Context, id string) (*models.DropZone, error)
	Find(ctx context.Context, q DropZoneQuery) ([]DropZoneHit, int64, error)
	Delete(ctx context.Context, id string) error
}

// MongoDropZoneCollection implements DropZoneCollection for MongoDB.
type MongoDropZoneCollection struct {
	Collection *mongo.Collection
}

// Upsert inserts the dropzone or overwrites the document with the same id.
func (c *MongoDropZoneCollection) Upsert(ctx context.Context, dz models.DropZone) error {
	opts := options.Replace().SetUpsert(true)
	_, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": dz.ID}, dz, opts)
	return err
}

// FindByID finds a dropzone by id regardless of its active flag.
func (c *MongoDropZoneCollection) FindByID(ctx context.Context, id string) (*models.DropZone, error) {
	var dz models.DropZone
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&dz)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dz, nil
}

// Find runs the list query, using a $geoNear pipeline when a proximity
// query is present so the store reports distances in meters.
func (c *MongoDropZoneCollection) Find(ctx context.Context, q DropZoneQuery) ([]DropZoneHit, int64, error) {
	if q.Near != nil {
		return c.findNear(ctx, q)
	}

	filter := bson.M{}
	if !q.IncludeInactive {
		filter["is_active"] = true
	}

	total, err := c.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count dropzones: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(q.Page.Skip()).
		SetLimit(q.Page.Limit())
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find dropzones: %w", err)
	}
	defer cursor.Close(ctx)

	var zones []models.DropZone
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, 0, fmt.Errorf("decode dropzones: %w", err)
	}

	hits := make([]DropZoneHit, 0, len(zones))
	for _, dz := range zones {
		hits = append(hits, DropZoneHit{DropZone: dz})
	}
	return hits, total, nil
}

// dropZoneWithDistance decodes a $geoNear result row.
type dropZoneWithDistance struct {
	models.DropZone `bson:",inline"`
	DistanceMeters  float64 `bson:"distance_meters"`
}

func (c *MongoDropZoneCollection) findNear(ctx context.Context, q DropZoneQuery) ([]DropZoneHit, int64, error) {
	match := bson.M{}
	if !q.IncludeInactive {
		match["is_active"] = true
	}

	geoNear := bson.D{{Key: "$geoNear", Value: bson.M{
		"near": bson.M{
			"type":        "Point",
			"coordinates": bson.A{q.Near.Longitude, q.Near.Latitude},
		},
		"distanceField": "distance_meters",
		"maxDistance":   q.Near.MaxDistanceMeters,
		"spherical":     true,
		"query":         match,
	}}}

	countCursor, err := c.Collection.Aggregate(ctx, mongo.Pipeline{
		geoNear,
		bson.D{{Key: "$count", Value: "total"}},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("count near dropzones: %w", err)
	}
	var counts []struct {
		Total int64 `bson:"total"`
	}
	if err := countCursor.All(ctx, &counts); err != nil {
		return nil, 0, fmt.Errorf("decode near count: %w", err)
	}
	var total int64
	if len(counts) > 0 {
		total = counts[0].Total
	}

	cursor, err := c.Collection.Aggregate(ctx, mongo.Pipeline{
		geoNear,
		bson.D{{Key: "$skip", Value: q.Page.Skip()}},
		bson.D{{Key: "$limit", Value: q.Page.Limit()}},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("find near dropzones: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []dropZoneWithDistance
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("decode near dropzones: %w", err)
	}

	hits := make([]DropZoneHit, 0, len(rows))
	for _, row := range rows {
		d := row.DistanceMeters
		hits = append(hits, DropZoneHit{DropZone: row.DropZone, DistanceMeters: &d})
	}
	return hits, total, nil
}

// Delete removes a dropzone by id.
func (c *MongoDropZoneCollection) Delete(ctx context.Context, id string) error {
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
