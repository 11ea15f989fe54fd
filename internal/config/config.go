package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Registry struct {
		// RollNumberSeed seeds the roll number generator; 0 seeds from the clock
		RollNumberSeed    uint64 `yaml:"roll_number_seed" env:"REGISTRY_ROLL_NUMBER_SEED"`
		UniqueRollNumbers bool   `yaml:"unique_roll_numbers" env:"REGISTRY_UNIQUE_ROLL_NUMBERS"`
		SeedDemoData      bool   `yaml:"seed_demo_data" env:"REGISTRY_SEED_DEMO_DATA"`
	} `yaml:"registry"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// DefaultEnvFile is loaded into the environment before overrides are applied
const DefaultEnvFile = ".env"

// LoadConfig loads configuration from a file, the .env file in the working
// directory and environment variables
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithEnvFile(configPath, DefaultEnvFile)
}

// LoadConfigWithEnvFile is LoadConfig with an explicit dotenv path
func LoadConfigWithEnvFile(configPath, envFile string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Variables already set in the environment win over the .env file
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Registry defaults
	config.Registry.RollNumberSeed = 0
	config.Registry.UniqueRollNumbers = false
	config.Registry.SeedDemoData = false

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	switch strings.ToLower(config.Server.Mode) {
	case "development", "production", "test":
	default:
		return fmt.Errorf("unknown server mode %q", config.Server.Mode)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown logging format %q", config.Logging.Format)
	}

	return nil
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return ":" + c.Server.Port
}
