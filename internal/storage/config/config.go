// Package config provides the user-level yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds global application settings
type Config struct {
	// OutputRoot is the base directory for derived output names.
	// Empty means the current working directory.
	OutputRoot string `yaml:"output_root"`
	// Emulators is the launcher probe order baked into generated play.sh
	// scripts. Empty means DefaultEmulators.
	Emulators []string `yaml:"emulators"`
}

// DefaultEmulators is the emulator probe order used when none is configured
func DefaultEmulators() []string {
	return []string{"dosbox-staging", "dosbox-x", "dosbox"}
}

// Load reads configuration from the given directory, returning defaults if
// no config file exists
func Load(configDir string) (*Config, error) {
	cfg := &Config{}

	configPath := filepath.Join(configDir, "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // Return defaults
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the given directory
func (c *Config) Save(configDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
