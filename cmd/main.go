package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ShaydeNofziger/skynav-api/internal/auth"
	"github.com/ShaydeNofziger/skynav-api/internal/config"
	"github.com/ShaydeNofziger/skynav-api/internal/db"
	"github.com/ShaydeNofziger/skynav-api/internal/handlers"
	"github.com/ShaydeNofziger/skynav-api/internal/middleware"
	"github.com/ShaydeNofziger/skynav-api/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("SKYNAV_JWT_SECRET is required")
	}

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	logger.Info("connected to MongoDB")

	database := client.Database(cfg.MongoDatabase)
	dropzones := &db.MongoDropZoneCollection{Collection: database.Collection(db.DropZonesCollection)}
	trips := &db.MongoTripCollection{Collection: database.Collection(db.TripsCollection)}
	segments := &db.MongoSegmentCollection{Collection: database.Collection(db.SegmentsCollection)}
	profiles := &db.MongoProfileCollection{Collection: database.Collection(db.ProfilesCollection)}

	tel := telemetry.NewClient(logger, cfg.TelemetryBrokerURL, cfg.TelemetryTopic)
	defer tel.Close()

	authService := auth.NewService(cfg.JWTSecret)
	authn := middleware.NewAuthMiddleware(authService)

	server := handlers.NewServer(dropzones, trips, segments, profiles, tel)
	router := server.Routes(authn)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.RequestLogger(logger)(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.WithField("port", cfg.Port).Info("HTTP server listening")
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
