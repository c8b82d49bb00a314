package config

import (
	"errors"
	"fmt"
	"strings"

	"pdfsqueeze/internal/services/ghostscript"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGhostscript(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGhostscript() error {
	if !ghostscript.IsValidPreset(c.Ghostscript.Preset) {
		return fmt.Errorf("ghostscript.preset must be one of: %s", strings.Join(ghostscript.PresetNames(), ", "))
	}
	if c.Ghostscript.DPI < 0 {
		return errors.New("ghostscript.dpi must be zero or a positive integer")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
