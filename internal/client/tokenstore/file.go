package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the token pair in a JSON file with owner-only permissions.
type FileStore struct {
	path string
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewFileStore returns a FileStore writing to path. The parent directory is
// created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(access, refresh string) error {
	data, err := json.Marshal(tokenPair{AccessToken: access, RefreshToken: refresh})
	if err != nil {
		return fmt.Errorf("marshal tokens: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

func (s *FileStore) Access() string  { return s.read().AccessToken }
func (s *FileStore) Refresh() string { return s.read().RefreshToken }

// read loads the stored pair. Missing or unreadable files yield an empty
// pair, never an error.
func (s *FileStore) read() tokenPair {
	var p tokenPair
	data, err := os.ReadFile(s.path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return tokenPair{}
	}
	return p
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove tokens: %w", err)
	}
	return nil
}
