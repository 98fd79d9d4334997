// Package config holds the runtime configuration for rosterdesk. Everything
// is environment-driven under the ROSTERDESK_ prefix; the state directory
// defaults to the per-user config dir so the session survives restarts.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is loaded once at startup and handed to the session store, the API
// client and the TUI.
type Config struct {
	// APIURL is the backend base URL, without a trailing slash.
	APIURL string `env:"API_URL" envDefault:"http://localhost:3000"`

	// HTTPTimeout bounds each network call, in seconds.
	HTTPTimeout int `env:"HTTP_TIMEOUT" envDefault:"15"`

	// StateDir holds the session file and the logbook. Empty means
	// <user config dir>/rosterdesk.
	StateDir string `env:"STATE_DIR"`
}

// Load reads the environment into a Config and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "ROSTERDESK_"}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("config: API URL is required")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("config: HTTP timeout must be positive, got %d", cfg.HTTPTimeout)
	}

	if strings.TrimSpace(cfg.StateDir) == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve user config dir: %w", err)
		}
		cfg.StateDir = filepath.Join(base, "rosterdesk")
	}
	return cfg, nil
}

// RequestTimeout returns the HTTP client timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// LogPath returns the logbook file inside the state directory.
func (c *Config) LogPath() string {
	return filepath.Join(c.StateDir, "rosterdesk.log")
}
