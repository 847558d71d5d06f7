// Package config loads typed application configuration from the
// environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment value the service consumes. The telemetry
// broker is optional; a missing value degrades telemetry to local logging
// rather than failing startup.
type Config struct {
	Port     string `envconfig:"SKYNAV_PORT" default:"8080"`
	LogLevel string `envconfig:"SKYNAV_LOG_LEVEL" default:"info"`

	MongoURI      string `envconfig:"SKYNAV_MONGO_URI" required:"true"`
	MongoDatabase string `envconfig:"SKYNAV_MONGO_DB" default:"skynav"`

	// JWTSecret verifies delegated identity tokens. Required by the API
	// server but not by the seed loader, so it is checked at server start
	// rather than here.
	JWTSecret string `envconfig:"SKYNAV_JWT_SECRET"`

	TelemetryBrokerURL string `envconfig:"SKYNAV_TELEMETRY_BROKER_URL"`
	TelemetryTopic     string `envconfig:"SKYNAV_TELEMETRY_TOPIC" default:"skynav/telemetry"`

	SeedFile string `envconfig:"SKYNAV_SEED_FILE" default:"seed/dropzones.json"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
