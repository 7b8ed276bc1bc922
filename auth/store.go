package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Credentials is the persisted auth state. The key names are canonical:
// "access_token" replaces the older "sigment_token" spelling, and files
// written under the old key are not migrated.
type Credentials struct {
	AccessToken    string `json:"access_token"`
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
}

// FileStore persists Credentials as JSON in the user's config directory.
// The request client only ever reads it; Save exists for login tooling.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// DefaultStorePath returns the standard credentials location,
// $XDG_CONFIG_HOME/sigment/credentials.json or the OS equivalent.
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sigment", "credentials.json"), nil
}

// NewFileStore opens a store at path. The file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read loads the persisted credentials. A missing or unreadable file
// yields zero-value Credentials; callers treat that as logged out.
func (s *FileStore) Read() Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credentials{}
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}
	}
	return creds
}

// Save writes the credentials, creating parent directories as needed.
// The file is written 0600 since it holds a bearer token.
func (s *FileStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the persisted credentials. Missing file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
