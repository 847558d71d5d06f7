// Package db is the document-store layer. Each entity gets a collection
// interface plus a Mongo implementation so handlers can be tested against
// mocks.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a point-read or point-write matches nothing.
var ErrNotFound = errors.New("not found")

// Collection names within the SkyNav database.
const (
	DropZonesCollection = "dropzones"
	TripsCollection     = "trips"
	SegmentsCollection  = "segments"
	ProfilesCollection  = "profiles"
)

// Connect connects to MongoDB at the given URI and verifies the connection
// with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}
