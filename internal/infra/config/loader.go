// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pipeboard/pipeboard/internal/domain"
)

// TokenEnvVar overrides the configured API token when set.
const TokenEnvVar = "PIPEBOARD_API_TOKEN"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the local pipeboard.toml
	globalConfDir string // Global config directory (e.g. ~/.config/pipeboard)
}

// NewLoader creates a new Loader for the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration: defaults, overridden by the
// global file, overridden by the local file. The PIPEBOARD_API_TOKEN
// environment variable overrides the token from either file.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			mergeConfigs(base, global)
		}
	}

	local, err := l.loadFile(filepath.Join(l.workDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if local != nil {
		mergeConfigs(base, local)
	}

	if token := os.Getenv(TokenEnvVar); token != "" {
		base.API.Token = token
	}

	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	base.Warnings = collectWarnings(base)
	return base, nil
}

// collectWarnings returns non-fatal issues with an otherwise valid
// configuration. They are printed to stderr before a command runs.
func collectWarnings(cfg *domain.Config) []string {
	var warnings []string
	if cfg.API.Token != "" && cfg.API.BaseURL == "" {
		warnings = append(warnings, "api.token is set but api.base_url is empty; the token is unused")
	}
	if interval := cfg.Board.RefreshInterval.Std(); interval > 0 && interval < time.Second {
		warnings = append(warnings, fmt.Sprintf("board.refresh_interval %v is very short; the board will poll the API aggressively", interval))
	}
	return warnings
}

// loadFile loads a configuration file. Returns nil with os.ErrNotExist
// if the file does not exist.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-zero fields of overlay onto base.
// Later sources take precedence, field by field.
func mergeConfigs(base, overlay *domain.Config) {
	if overlay.API.BaseURL != "" {
		base.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Token != "" {
		base.API.Token = overlay.API.Token
	}
	if overlay.API.Timeout != 0 {
		base.API.Timeout = overlay.API.Timeout
	}
	if overlay.Board.RefreshInterval != 0 {
		base.Board.RefreshInterval = overlay.Board.RefreshInterval
	}
	if overlay.Board.HideWeighted {
		base.Board.HideWeighted = true
	}
	if overlay.Log.Level != "" {
		base.Log.Level = overlay.Log.Level
	}
	if overlay.Log.File != "" {
		base.Log.File = overlay.Log.File
	}
}
