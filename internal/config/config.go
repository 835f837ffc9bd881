package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/fadedpez/veinticuatro/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	TargetValue int
	HandSize    int

	// Logging
	LogLevel logging.Level

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	targetValue, err := getEnvIntWithDefault("TARGET_VALUE", 24)
	if err != nil {
		return nil, err
	}

	handSize, err := getEnvIntWithDefault("HAND_SIZE", 4)
	if err != nil {
		return nil, err
	}

	logLevel, err := logging.ParseLevel(getEnvWithDefault("LOG_LEVEL", "INFO"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		TargetValue: targetValue,
		HandSize:    handSize,
		LogLevel:    logLevel,
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.HandSize < 1 {
		return fmt.Errorf("HAND_SIZE must be at least 1, got %d", c.HandSize)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault returns an integer environment variable or default if not set
func getEnvIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}
