package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Data     DataConfig
}

// ServerConfig holds API server settings.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds analysis store settings. An empty URL selects
// the in-memory store.
type DatabaseConfig struct {
	URL string
}

// DataConfig holds dataset ingestion settings.
type DataConfig struct {
	File           string
	RTColumn       string
	ModalityColumn string
	NumPercentiles int
}

// Load reads configuration from environment variables, applying
// defaults where unset.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Data: DataConfig{
			File:           getEnv("DATA_FILE", ""),
			RTColumn:       getEnv("RT_COLUMN", "RT"),
			ModalityColumn: getEnv("MODALITY_COLUMN", "Modality"),
			NumPercentiles: getEnvInt("NUM_PERCENTILES", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
