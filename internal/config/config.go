package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	JWTSecret            string
	JWTExpirationMinutes int
	Storage              StorageConfig
}

// StorageConfig selects the slot-store backend the dataset is persisted to.
// Driver is one of "file", "sqlite" or "memory"; Path is the root directory
// for the file driver and the database file for sqlite.
type StorageConfig struct {
	Driver string
	Path   string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	storageConfig := StorageConfig{
		Driver: getEnv("STORAGE_DRIVER", "file"),
		Path:   getEnv("STORAGE_PATH", "data"),
	}

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	return &Config{
		Port:                 getEnv("PORT", "3001"),
		Origin:               getEnv("ORIGIN", "http://localhost:5173"),
		Environment:          getEnv("APP_ENV", "development"),
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		Storage:              storageConfig,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
