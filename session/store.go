package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const tokenFileName = "token"

// Store persists the one opaque bearer credential across runs: a single
// file under the user config dir, the terminal counterpart of localStorage
// under a fixed key.
type Store struct {
	path string
}

func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(dir, "staffdesk")), nil
}

func NewStoreAt(dir string) *Store {
	return &Store{path: filepath.Join(dir, tokenFileName)}
}

// Load returns the persisted credential, or "" when none is stored.
func (s *Store) Load() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the credential; clearing an already-empty store is fine.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
