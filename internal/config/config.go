package config

import (
	"os"
	"strconv"

	"descstats/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Stats  StatsConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// StatsConfig holds the engine's default policies; per-request options can
// override both flags.
type StatsConfig struct {
	AllowNegative      bool
	PopulationVariance bool
	BatchLimit         int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("SERVER_PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", ""),
		},
		Stats: StatsConfig{
			AllowNegative:      getEnvBoolOrDefault("STATS_ALLOW_NEGATIVE", true),
			PopulationVariance: getEnvBoolOrDefault("STATS_POPULATION_VARIANCE", true),
			BatchLimit:         getEnvIntOrDefault("STATS_BATCH_LIMIT", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("SERVER_PORT cannot be empty")
	}
	if config.Stats.BatchLimit < 1 {
		return errors.ConfigInvalid("STATS_BATCH_LIMIT must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
