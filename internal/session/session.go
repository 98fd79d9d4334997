// Package session owns the persisted session marker. It is the one place
// tokens are read or written; the roster loader and the submitter receive a
// *Store instead of reaching into storage themselves.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileName is the session file created inside the state directory.
const FileName = "session.yaml"

type sessionFile struct {
	AccessToken  string `yaml:"access_token,omitempty"`
	RefreshToken string `yaml:"refresh_token,omitempty"`
}

// Store persists the opaque access token (and the otherwise unused refresh
// token) to a small YAML file.
type Store struct {
	path string

	mu   sync.Mutex
	data sessionFile
}

// Open loads the session file from stateDir, creating the directory if
// needed. A missing file means an unauthenticated session, not an error.
func Open(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("session: ensure state dir: %w", err)
	}
	s := &Store{path: filepath.Join(stateDir, FileName)}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("session: read %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("session: parse %s: %w", s.path, err)
	}
	return s, nil
}

// IsAuthenticated reports whether a session marker is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AccessToken != ""
}

// Token returns the current access token, "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AccessToken
}

// SetTokens stores a fresh access/refresh pair after login.
func (s *Store) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AccessToken = access
	s.data.RefreshToken = refresh
	return s.save()
}

// Invalidate clears the access token after a 401 so the user is forced back
// through login. The refresh token is left in place.
func (s *Store) Invalidate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AccessToken = ""
	return s.save()
}

// Logout clears both token keys.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = sessionFile{}
	return s.save()
}

func (s *Store) save() error {
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}
