package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROSTERDESK_API_URL", "")
	t.Setenv("ROSTERDESK_HTTP_TIMEOUT", "")
	t.Setenv("ROSTERDESK_STATE_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://localhost:3000" {
		t.Fatalf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.RequestTimeout() != 15*time.Second {
		t.Fatalf("timeout = %v, want 15s", cfg.RequestTimeout())
	}
	if cfg.StateDir == "" {
		t.Fatalf("state dir must default to a user directory")
	}
}

func TestLoadOverridesAndTrimsURL(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROSTERDESK_API_URL", "https://scheduler.example.com/")
	t.Setenv("ROSTERDESK_HTTP_TIMEOUT", "5")
	t.Setenv("ROSTERDESK_STATE_DIR", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "https://scheduler.example.com" {
		t.Fatalf("APIURL = %q, trailing slash must be stripped", cfg.APIURL)
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", cfg.RequestTimeout())
	}
	if got, want := cfg.LogPath(), filepath.Join(dir, "rosterdesk.log"); got != want {
		t.Fatalf("LogPath = %q, want %q", got, want)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("ROSTERDESK_API_URL", "")
	t.Setenv("ROSTERDESK_HTTP_TIMEOUT", "-3")
	t.Setenv("ROSTERDESK_STATE_DIR", t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatalf("negative timeout must be rejected")
	}
}
