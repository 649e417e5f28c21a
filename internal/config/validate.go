// If you are AI: This file validates configuration values and returns descriptive errors.

package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Editor.Validate(); err != nil {
		return fmt.Errorf("editor config: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	return nil
}

// Validate checks server configuration values.
func (s *ServerConfig) Validate() error {
	if s.HTTPPort <= 0 || s.HTTPPort > 65535 {
		return fmt.Errorf("http_port must be between 1 and 65535, got %d", s.HTTPPort)
	}
	return nil
}

// Validate checks editor configuration values.
func (e *EditorConfig) Validate() error {
	if !doublestar.ValidatePattern(e.CatalogPattern) {
		return fmt.Errorf("catalog_pattern %q is not a valid glob", e.CatalogPattern)
	}
	if e.EventBuffer <= 0 || e.EventBuffer > 1<<16 {
		return fmt.Errorf("event_buffer must be between 1 and 65536, got %d", e.EventBuffer)
	}
	return nil
}

// Validate checks log configuration values.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil || l.Level == "" {
		return fmt.Errorf("level %q is not a log level", l.Level)
	}
	if l.Format != "console" && l.Format != "json" {
		return fmt.Errorf("format must be console or json, got %q", l.Format)
	}
	return nil
}
