// Package config loads service configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	JWTExpiry    time.Duration
	MQTTBroker   string
	MQTTClientID string
}

// Load reads a .env file when present, then the environment. Missing values
// fall back to development defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      getEnv("MONGO_DB", "fuellog"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTExpiry:    24 * time.Hour,
		MQTTBroker:   os.Getenv("MQTT_BROKER"),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "fuellog-server"),
	}

	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.JWTExpiry = parsed
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
