package config

import (
	"os"

	"statwizard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Profiles ProfilesConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ProfilesConfig holds profile-document loading settings
type ProfilesConfig struct {
	// Dir overrides the embedded profile documents with a directory of
	// YAML files. Empty means use the embedded set.
	Dir string

	// Default is the profile id used when a request does not name one.
	Default string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "15006"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Profiles: ProfilesConfig{
			Dir:     getEnvOrDefault("PROFILES_DIR", ""),
			Default: getEnvOrDefault("DEFAULT_PROFILE", "full"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Profiles.Default == "" {
		return errors.ConfigInvalid("default profile id is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
