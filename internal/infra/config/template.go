package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pipeboard/pipeboard/internal/domain"
)

// Template is the starter configuration written by `pipeboard config init`.
const Template = `# pipeboard configuration
#
# Settings merge in order: built-in defaults, then the global file
# (~/.config/pipeboard/pipeboard.toml), then this file. The
# PIPEBOARD_API_TOKEN environment variable overrides api.token.

[api]
# CRM API base URL. Leave empty to work only with --fixture files.
base_url = ""
# token = ""
# timeout = "10s"

[board]
# How often the board refetches from the server. "0s" disables the
# periodic refresh; manual refresh stays available.
# refresh_interval = "30s"
# hide_weighted = false

[log]
# level = "info"
# Logging is disabled until a file is set.
# file = ".pipeboard/pipeboard.log"
`

// WriteTemplate writes the starter config file into dir. It refuses to
// overwrite an existing file.
func WriteTemplate(dir string) (string, error) {
	path := filepath.Join(dir, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return "", err
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
