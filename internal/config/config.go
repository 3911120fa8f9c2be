// Package config manages the mdlevel configuration file. It handles
// discovery, loading, validation, and saving of the two persisted
// default magnitudes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the configuration file, looked up in the
// working directory and its parents.
const ConfigFile = ".mdlevel.toml"

// Default magnitudes used when no configuration file exists.
const (
	DefaultIncreaseBy = 1
	DefaultDecreaseBy = 1
)

// Config holds the persisted defaults. Both magnitudes share the
// header level domain [1, 6].
type Config struct {
	IncreaseBy int `toml:"increase_by"`
	DecreaseBy int `toml:"decrease_by"`

	path string // file the config was loaded from, empty for defaults
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{IncreaseBy: DefaultIncreaseBy, DecreaseBy: DefaultDecreaseBy}
}

// Find locates the configuration file by walking up from dir.
// Returns an empty string if no file is found.
func Find(dir string) string {
	for {
		path := filepath.Join(dir, ConfigFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load loads the configuration for the current working directory,
// falling back to defaults when no file exists.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFrom(cwd)
}

// LoadFrom loads the configuration discovered from dir, falling back
// to defaults when no file exists.
func LoadFrom(dir string) (*Config, error) {
	path := Find(dir)
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.path = path

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration back to its backing file.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config has no backing file")
	}
	if err := c.validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(c.path, data, 0644)
}

// Path returns the file the config was loaded from, or an empty
// string for the built-in defaults.
func (c *Config) Path() string {
	return c.path
}

// Initialize creates a new configuration file with defaults in dir.
func Initialize(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%s already exists", path)
	}

	cfg := Default()
	cfg.path = path
	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.IncreaseBy < 1 || c.IncreaseBy > 6 {
		return fmt.Errorf("increase_by must be between 1 and 6, got %d", c.IncreaseBy)
	}
	if c.DecreaseBy < 1 || c.DecreaseBy > 6 {
		return fmt.Errorf("decrease_by must be between 1 and 6, got %d", c.DecreaseBy)
	}
	return nil
}
