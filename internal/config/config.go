package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Deployment stages.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// Config holds the service configuration, sourced from the environment.
type Config struct {
	Stage          string
	Port           string
	CMCAPIKey      string
	NativeCurrency string
	DefaultFiat    string
	RateCacheTTL   time.Duration
}

// IsValidStage reports whether stage is a recognized deployment stage.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	}
	return false
}

// Load reads configuration from the environment, loading a .env file first
// for local development.
func Load() (*Config, error) {
	// Load environment variables from .env file for local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	stage := getEnvWithDefault("STAGE", StageLocal)
	if !IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			stage, StageProd, StageDev, StageLocal)
	}

	cfg := &Config{
		Stage:          stage,
		Port:           getEnvWithDefault("PORT", "8080"),
		CMCAPIKey:      os.Getenv("CMC_API_KEY"),
		NativeCurrency: getEnvWithDefault("NATIVE_CURRENCY", "ETH"),
		DefaultFiat:    getEnvWithDefault("DEFAULT_FIAT", "usd"),
		RateCacheTTL:   time.Minute,
	}

	if raw := os.Getenv("RATE_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_CACHE_TTL %q: %w", raw, err)
		}
		cfg.RateCacheTTL = ttl
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
