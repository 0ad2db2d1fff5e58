package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	WebhookURL string `yaml:"webhook_url" validate:"omitempty,url"`
	LogLevel   string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no usable config file exists.
// The environment fallback for the webhook URL still applies.
func Default() *Config {
	return withDefaults(&Config{})
}

// ReadConfig loads ~/.config/flowternity/config.yaml. A missing file is not
// an error; the webhook URL can still come from the environment or a flag.
func ReadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %v", err)
	}

	configPath := filepath.Join(homeDir, ".config", "flowternity", "config.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config file: %v", err)
	}

	return withDefaults(&config), nil
}

func withDefaults(config *Config) *Config {
	if config.WebhookURL == "" {
		config.WebhookURL = os.Getenv("FLOWTERNITY_WEBHOOK_URL")
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	return config
}
