package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LocalFile is picked up from the working directory when no path is given.
const LocalFile = "leapfrog.yaml"

// Load overlays a YAML tuning file onto Default and validates the result.
// Search order: customPath -> ./leapfrog.yaml -> defaults.
func Load(customPath string) (*Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Overlay(cfg, data); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validated(cfg)
	}

	data, err := os.ReadFile(LocalFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", LocalFile, err)
	}
	if err := Overlay(cfg, data); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", LocalFile, err)
	}
	return validated(cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay decodes data on top of cfg. Keys absent from data keep their current value.
func Overlay(cfg *Config, data []byte) error {
	return yaml.Unmarshal(data, cfg)
}

// Marshal renders cfg as YAML, durations as strings like "150ms".
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
