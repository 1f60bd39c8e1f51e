package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ftracker/internal/workout"
)

// Config represents the application configuration
type Config struct {
	Display  DisplayConfig     `json:"display"`
	Packages []workout.Package `json:"packages"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Styled bool `json:"styled"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Packages: workout.DemoPackages(),
	}
}

// Load reads the configuration from ~/.ftracker/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	if len(cfg.Packages) == 0 {
		cfg.Packages = DefaultConfig().Packages
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.ftracker/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path, creating its directory
func SaveFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file at ~/.ftracker/config.json if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := exampleConfig()
	return Save(&example)
}

// CreateExampleFile writes an example config to path if none exists
func CreateExampleFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	example := exampleConfig()
	return SaveFile(path, &example)
}

func exampleConfig() Config {
	return Config{
		Display:  DisplayConfig{Styled: false},
		Packages: workout.DemoPackages(),
	}
}

// Validate checks that every package has a type and data; codes are left to the dispatcher
func (c *Config) Validate() error {
	for i, p := range c.Packages {
		if p.Type == "" {
			return fmt.Errorf("packages[%d].type is required", i)
		}
		if len(p.Data) == 0 {
			return fmt.Errorf("packages[%d].data is required for %q", i, p.Type)
		}
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultPath returns ~/.ftracker/config.json
func DefaultPath() (string, error) {
	return getConfigPath()
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".ftracker"), nil
}
