package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultLogDir    = "~/.local/share/pdfsqueeze/logs"
	defaultPreset    = "ebook"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Ghostscript: Ghostscript{
			Preset: defaultPreset,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultHistoryPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "pdfsqueeze", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/pdfsqueeze/history.db"
	}
	return filepath.Join(home, ".local", "share", "pdfsqueeze", "history.db")
}
