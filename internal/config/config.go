// Package config persists small user preferences as JSON under the
// platform config directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the persisted preferences. Zero value means no preferences
// have been saved yet.
type Config struct {
	LastCommand  string   `json:"lastCommand,omitempty"`
	DefaultRoute string   `json:"defaultRoute,omitempty"`
	Verbose      bool     `json:"verbose,omitempty"`
	CopyFiles    []string `json:"copyFiles,omitempty"`
}

// DefaultPath returns the preference file location, e.g.
// ~/.config/thicket/config.json on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "thicket", "config.json"), nil
}

// Load reads the preference file at path. A missing file yields defaults,
// not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Save writes the preferences to path, creating parent directories.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
