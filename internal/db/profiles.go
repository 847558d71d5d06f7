package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShaydeNofziger/skynav-api/internal/models"
)

// ProfileCollection defines the interface for user profile store operations.
// Profile ids are identity-provider subjects, so writes are upserts.
type ProfileCollection interface {
	Upsert(ctx context.Context, profile models.UserProfile) error
	FindByID(ctx context.Context, id string) (*models.UserProfile, error)
}

// MongoProfileCollection implements ProfileCollection for MongoDB.
type MongoProfileCollection struct {
	Collection *mongo.Collection
}

// Upsert inserts the profile or overwrites the document with the same id.
func (c *MongoProfileCollection) Upsert(ctx context.Context, profile models.UserProfile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile, opts)
	return err
}

// FindByID finds a profile by its subject id.
func (c *MongoProfileCollection) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
