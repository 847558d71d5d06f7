// The seed command loads the bundled dropzone directory into the document
// store. It upserts by id, so re-running converges to the same state. Exit
// code 1 means missing required configuration or an unreadable seed file;
// individual record failures are logged and do not change the exit code.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ShaydeNofziger/skynav-api/internal/config"
	"github.com/ShaydeNofziger/skynav-api/internal/db"
	"github.com/ShaydeNofziger/skynav-api/internal/models"
)

func main() {
	_ = godotenv.Load()

	logger := log.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		logger.Errorf("failed to read seed file %s: %v", cfg.SeedFile, err)
		os.Exit(1)
	}

	var zones []models.DropZone
	if err := json.Unmarshal(data, &zones); err != nil {
		logger.Errorf("failed to parse seed file: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Errorf("failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	collection := &db.MongoDropZoneCollection{
		Collection: client.Database(cfg.MongoDatabase).Collection(db.DropZonesCollection),
	}

	now := time.Now().UTC()
	var succeeded, failed int
	for _, dz := range zones {
		if dz.CreatedAt.IsZero() {
			dz.CreatedAt = now
		}
		dz.UpdatedAt = now
		if err := collection.Upsert(ctx, dz); err != nil {
			logger.WithField("dropzone_id", dz.ID).Errorf("upsert failed: %v", err)
			failed++
			continue
		}
		succeeded++
	}

	logger.WithFields(log.Fields{
		"succeeded": succeeded,
		"failed":    failed,
		"total":     len(zones),
	}).Info("seed complete")
}
