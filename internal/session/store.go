// Package session persists the current-user record between console runs,
// the durable key-value storage a browser client would keep in localStorage.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stockroomhq/console/internal/api"
	"github.com/stockroomhq/console/pkg/config"
)

const (
	defaultDirName  = "stockroom"
	defaultFileName = "session.json"
)

// Store reads and writes the serialized current user.
type Store struct {
	path string
}

// NewStore resolves the session file location. An unset path falls back to
// the user config directory.
func NewStore(cfg config.SessionConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving session dir: %w", err)
		}
		path = filepath.Join(base, defaultDirName, defaultFileName)
	}
	return &Store{path: path}, nil
}

// Save persists the user record, creating parent directories as needed.
func (s *Store) Save(user api.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Load returns the stored user, or nil when no session exists.
func (s *Store) Load() (*api.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}
	var user api.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &user, nil
}

// Clear removes the session record. Missing files are not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
