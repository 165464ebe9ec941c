// Package localstore is the on-disk fallback store: a string key-value
// store with one JSON blob per key. It is the durable record when the
// remote database is unreachable, so writes must survive restarts and a
// corrupted blob must never take the service down.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	dir string
}

// Open prepares the backing directory and returns a store rooted there.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("localstore: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// path maps a key to a file name. Keys are caller-controlled identifiers,
// slashes are flattened so a key can never escape the store directory.
func (s *Store) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}

// Set writes value under key. The write goes through a temp file and a
// rename so a crash mid-write leaves the previous value intact.
func (s *Store) Set(key, value string) error {
	p := s.path(key)
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("localstore: commit %s: %w", key, err)
	}
	return nil
}

// Get returns the stored value, or ok=false when the key is absent.
func (s *Store) Get(key string) (string, bool) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: delete %s: %w", key, err)
	}
	return nil
}

// GetJSON decodes the value under key into v. A blob that no longer parses
// is treated as absent and the key is cleared, so one bad write cannot wedge
// every later load.
func (s *Store) GetJSON(key string, v any) (bool, error) {
	raw, ok := s.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		_ = s.Delete(key)
		return false, fmt.Errorf("localstore: corrupted value for %s dropped: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func (s *Store) SetJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", key, err)
	}
	return s.Set(key, string(b))
}
