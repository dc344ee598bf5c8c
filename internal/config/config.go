// Package config centralises configuration parsing for the registration service.
package config

import (
	"os"
	"time"
)

// Config captures runtime configuration values for the registration service.
type Config struct {
	HTTPAddress  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	SeedFile     string // Optional JSON file overriding the built-in activity catalog.
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:  getEnv("HTTP_ADDRESS", ":8080"),
		ReadTimeout:  getDurationEnv("READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		SeedFile:     getEnv("SEED_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
