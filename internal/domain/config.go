package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// ConfigFileName is the configuration file name, looked up in the
// current directory and in the global config directory.
const ConfigFileName = "pipeboard.toml"

// GlobalConfigDir returns the global config directory under configHome
// (typically $XDG_CONFIG_HOME or ~/.config).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "pipeboard")
}

// Duration is a time.Duration that marshals to and from TOML strings
// like "10s" or "1m30s".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalText parses time.ParseDuration notation.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders time.ParseDuration notation.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"` // Non-fatal issues found while loading
	API      APIConfig   `toml:"api"`
	Board    BoardConfig `toml:"board"`
	Log      LogConfig   `toml:"log"`
}

// APIConfig holds settings for the CRM API from the [api] section.
type APIConfig struct {
	BaseURL string   `toml:"base_url,omitempty"` // CRM API base URL (empty = fixture mode only)
	Token   string   `toml:"token,omitempty"`    // Bearer token (PIPEBOARD_API_TOKEN overrides)
	Timeout Duration `toml:"timeout,omitempty"`  // Per-request timeout, e.g. "10s"
}

// BoardConfig holds settings for the board TUI from the [board] section.
type BoardConfig struct {
	RefreshInterval Duration `toml:"refresh_interval,omitempty"` // Periodic refetch interval, e.g. "30s" (0 = manual only)
	HideWeighted    bool     `toml:"hide_weighted,omitempty"`    // Hide probability-weighted totals in column headers
}

// LogConfig holds settings for logging from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty = logging disabled)
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Timeout: Duration(10 * time.Second),
		},
		Board: BoardConfig{
			RefreshInterval: Duration(30 * time.Second),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative: %v", c.API.Timeout.Std())
	}
	if c.Board.RefreshInterval < 0 {
		return fmt.Errorf("board.refresh_interval must not be negative: %v", c.Board.RefreshInterval.Std())
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
