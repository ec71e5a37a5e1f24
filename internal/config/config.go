package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Path   string `yaml:"path" env:"SEED_PATH"`
		Strict bool   `yaml:"strict" env:"SEED_STRICT"`
	} `yaml:"seed"`

	Mood struct {
		MissingSamples string `yaml:"missing_samples" env:"MOOD_MISSING_SAMPLES"`
	} `yaml:"mood"`

	Security struct {
		BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST"`
	} `yaml:"security"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and the environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Logging.Level = "info"
	config.Logging.Format = "text"

	config.Seed.Path = ""
	config.Seed.Strict = true

	config.Mood.MissingSamples = "zero"

	config.Security.BcryptCost = 12
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %q", config.Logging.Format)
	}

	switch strings.ToLower(config.Mood.MissingSamples) {
	case "zero", "skip":
	default:
		return fmt.Errorf("mood.missing_samples must be zero or skip, got %q", config.Mood.MissingSamples)
	}

	if config.Security.BcryptCost < bcrypt.MinCost || config.Security.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, config.Security.BcryptCost)
	}

	if config.Seed.Path != "" {
		if _, err := os.Stat(config.Seed.Path); err != nil {
			return fmt.Errorf("seed file: %w", err)
		}
	}

	return nil
}

// PrettyLogs reports whether logs should be written in human-readable form
func (c *Config) PrettyLogs() bool {
	return strings.ToLower(c.Logging.Format) == "text"
}
