package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// Catalog database location; empty means the default under ~/.stacks
	DBPath string `json:"db_path,omitempty"`

	// UI Preferences
	UI UIConfig `json:"ui"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme    string `json:"theme"`
	PageSize int    `json:"page_size"`    // previews materialized per "show more"
	Density  string `json:"density_mode"` // "comfortable" or "compact"
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:    "dark",
			PageSize: 24,
			Density:  "comfortable",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".stacks", "config.json")
}

// DefaultDBPath returns the catalog database location used when the
// config doesn't name one.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".stacks", "catalog.db")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DB returns the configured database path, falling back to the default.
func (c *Config) DB() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return DefaultDBPath()
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.UI.PageSize < 1 {
		c.UI.PageSize = def.UI.PageSize
	}
	if c.UI.Density == "" {
		c.UI.Density = def.UI.Density
	}
}
