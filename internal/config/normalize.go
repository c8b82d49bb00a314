package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeGhostscript(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeGhostscript() error {
	c.Ghostscript.Binary = strings.TrimSpace(c.Ghostscript.Binary)
	if c.Ghostscript.Binary == "" {
		if value, ok := os.LookupEnv("PDFSQUEEZE_GS"); ok {
			c.Ghostscript.Binary = strings.TrimSpace(value)
		}
	}
	if c.Ghostscript.Binary != "" {
		expanded, err := expandPath(c.Ghostscript.Binary)
		if err != nil {
			return fmt.Errorf("ghostscript.binary: %w", err)
		}
		c.Ghostscript.Binary = expanded
	}
	c.Ghostscript.Preset = strings.ToLower(strings.TrimSpace(c.Ghostscript.Preset))
	if c.Ghostscript.Preset == "" {
		c.Ghostscript.Preset = defaultPreset
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath()
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
