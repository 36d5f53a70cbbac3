// Package config loads and saves the assembler's optional TOML configuration
// file, grounded on the teacher's own per-OS config path convention.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the driver's optional settings. A Config is loaded once per
// invocation from an `assembler.toml` file, if one exists; absent that, the
// defaults below apply.
type Config struct {
	// Output controls what the driver writes besides the object file.
	Output struct {
		EmitListing bool `toml:"emit_listing"`
		WordColumn  int  `toml:"word_column_width"`
	} `toml:"output"`

	// Diagnostics controls how errors are rendered.
	Diagnostics struct {
		Color bool `toml:"color"`
	} `toml:"diagnostics"`

	// Listing controls the symbol/listing browser (cmd/asmbrowse).
	Listing struct {
		HistorySize int `toml:"history_size"`
	} `toml:"listing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Output.EmitListing = false
	cfg.Output.WordColumn = 6
	cfg.Diagnostics.Color = true
	cfg.Listing.HistorySize = 500
	return cfg
}

// GetConfigPath returns the platform-specific config file path, creating the
// containing directory if it does not already exist.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "word24asm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "assembler.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "word24asm")

	default:
		return "assembler.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "assembler.toml"
	}

	return filepath.Join(configDir, "assembler.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from path. A missing file is not an error;
// it yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to path, creating parent directories as needed.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
