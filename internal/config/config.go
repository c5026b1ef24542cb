package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port             int
	LogLevel         string
	LogFormat        string
	Environment      string
	DataDir          string // Directory holding the scraped catalog files
	SnapshotMaxBytes int64  // Upper bound for snapshot import payloads
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		DataDir:     getEnv("DATA_DIR", DefaultDataDir),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxBytesStr := getEnv("SNAPSHOT_MAX_BYTES", DefaultSnapshotMaxBytes)
	maxBytes, err := strconv.ParseInt(maxBytesStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_MAX_BYTES value: %w", err)
	}
	if maxBytes <= 0 {
		return nil, fmt.Errorf("SNAPSHOT_MAX_BYTES must be positive, got %d", maxBytes)
	}
	cfg.SnapshotMaxBytes = maxBytes

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// ItemsPath returns the location of the scraped items dataset
func (c *Config) ItemsPath() string {
	return filepath.Join(c.DataDir, ItemsFileName)
}

// RecipesPath returns the location of the scraped recipes dataset
func (c *Config) RecipesPath() string {
	return filepath.Join(c.DataDir, RecipesFileName)
}
