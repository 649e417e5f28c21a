// If you are AI: This file defines the configuration structure for gsteditor.
// It uses strict YAML decoding, GSTEDITOR_* environment overrides and explicit defaults.

package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GSTEDITOR_"

// Config holds the complete editor configuration.
// All fields must have explicit defaults or be required.
type Config struct {
	Server  ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
	Editor  EditorConfig  `yaml:"editor" envPrefix:"EDITOR_"`
	Journal JournalConfig `yaml:"journal" envPrefix:"JOURNAL_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Bind     string `yaml:"bind" env:"BIND"`          // Listen address
	HTTPPort int    `yaml:"http_port" env:"HTTP_PORT"` // Port for the API, event feed and health endpoint
}

// EditorConfig defines editor session settings.
type EditorConfig struct {
	CatalogDir     string `yaml:"catalog_dir" env:"CATALOG_DIR"`         // Extra factory definitions, optional
	CatalogPattern string `yaml:"catalog_pattern" env:"CATALOG_PATTERN"` // Glob for factory files under catalog_dir
	EventBuffer    int    `yaml:"event_buffer" env:"EVENT_BUFFER"`       // Per-subscriber event ring size
	DocumentsDir   string `yaml:"documents_dir" env:"DOCUMENTS_DIR"`     // HTTP save and load stay under this directory
}

// JournalConfig defines the command journal.
type JournalConfig struct {
	Path string `yaml:"path" env:"PATH"` // SQLite file; empty disables the journal
}

// LogConfig defines logging output.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`   // trace, debug, info, warn, error
	Format string `yaml:"format" env:"FORMAT"` // console or json
}

// Load reads configuration from a YAML file. An empty path means defaults.
// Environment overrides are applied after the file.
// Returns an error if the file cannot be read or decoded.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true) // Reject unknown fields

		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Apply defaults
	cfg.setDefaults()

	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Server.Bind == "" {
		c.Server.Bind = "127.0.0.1"
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8081
	}
	if c.Editor.CatalogPattern == "" {
		c.Editor.CatalogPattern = "**/*.yaml"
	}
	if c.Editor.DocumentsDir == "" {
		c.Editor.DocumentsDir = "."
	}
	if c.Editor.EventBuffer == 0 {
		c.Editor.EventBuffer = 256
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}
