package localstate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"fieldservice/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

// DefaultKey is the entry the logged-in flag is stored under.
const DefaultKey = "fieldservice_isLoggedIn"

const loggedInValue = "true"

// LoginFlagFileStore keeps the logged-in flag in a small YAML key/value file, the
// local equivalent of browser storage. Unrelated keys in the file are preserved.
type LoginFlagFileStore struct {
	mu   sync.Mutex
	path string
	key  string
}

var _ interfaces.ILoginFlagStore = (*LoginFlagFileStore)(nil)

func NewLoginFlagFileStore(path, key string) *LoginFlagFileStore {
	if key == "" {
		key = DefaultKey
	}
	return &LoginFlagFileStore{path: path, key: key}
}

func (s *LoginFlagFileStore) IsLoggedIn(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.read()
	if err != nil {
		return false, err
	}
	return entries[s.key] == loggedInValue, nil
}

func (s *LoginFlagFileStore) SetLoggedIn(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[s.key] = loggedInValue
	return s.write(entries)
}

func (s *LoginFlagFileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := entries[s.key]; !ok {
		return nil
	}
	delete(entries, s.key)
	return s.write(entries)
}

func (s *LoginFlagFileStore) read() (map[string]string, error) {
	entries := map[string]string{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("localstate: read %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("localstate: parse %s: %w", s.path, err)
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}

func (s *LoginFlagFileStore) write(entries map[string]string) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("localstate: ensure dir: %w", err)
		}
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("localstate: encode: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("localstate: write %s: %w", s.path, err)
	}
	return nil
}
