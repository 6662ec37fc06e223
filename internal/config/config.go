package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// APIBaseURL is the root of the locker API, e.g. https://lockers.example.org
	APIBaseURL string `yaml:"apiBaseURL" validate:"required,url"`
	// Areas optionally whitelists the area labels lockers may be added to.
	// Empty means any area is accepted.
	Areas []string `yaml:"areas,omitempty" validate:"omitempty,dive,required"`
}

// AreaAllowed reports whether lockers may be registered in the given area.
func (c *Config) AreaAllowed(area string) bool {
	if len(c.Areas) == 0 {
		return true
	}
	for _, a := range c.Areas {
		if a == area {
			return true
		}
	}
	return false
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for the given
// environment. It prefers lockerdesk_config.<env>.yaml and falls back to
// lockerdesk_config.yaml, checking the current directory first, then the
// user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// findConfigFile searches for the config file in the current directory and
// home directory, trying the env-specific name first
func findConfigFile(env string) (string, error) {
	candidates := []string{"lockerdesk_config.yaml"}
	if env != "" {
		candidates = []string{fmt.Sprintf("lockerdesk_config.%s.yaml", env), "lockerdesk_config.yaml"}
	}

	homeDir, homeErr := os.UserHomeDir()

	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		if homeErr == nil {
			homePath := filepath.Join(homeDir, name)
			if _, err := os.Stat(homePath); err == nil {
				return homePath, nil
			}
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
