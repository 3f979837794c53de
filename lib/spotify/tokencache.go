// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// TokenStore persists tokens across processes so every CLI invocation
// does not re-run an OAuth2 flow.
type TokenStore interface {
	// Load returns the cached token. When no token is cached the error
	// matches errors.Is(err, fs.ErrNotExist).
	Load() (Token, error)

	// Save replaces the cached token.
	Save(Token) error
}

// FileTokenStore stores the token as a JSON file. The file is written
// with mode 0600 (it contains bearer and refresh tokens) under a parent
// directory created with mode 0700. A sidecar flock file serializes
// concurrent invocations so two processes refreshing at once don't
// interleave partial writes.
type FileTokenStore struct {
	path string
	lock *flock.Flock
}

// NewFileTokenStore creates a store at the given path. An empty path
// selects DefaultTokenCachePath.
func NewFileTokenStore(path string) *FileTokenStore {
	if path == "" {
		path = DefaultTokenCachePath()
	}
	return &FileTokenStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the cache file location.
func (store *FileTokenStore) Path() string {
	return store.path
}

func (store *FileTokenStore) Load() (Token, error) {
	if err := store.ensureDirectory(); err != nil {
		return Token{}, err
	}
	if err := store.lock.RLock(); err != nil {
		return Token{}, fmt.Errorf("locking token cache: %w", err)
	}
	defer store.lock.Unlock()

	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Token{}, fmt.Errorf("no cached token at %s: %w", store.path, err)
		}
		return Token{}, fmt.Errorf("reading token cache %s: %w", store.path, err)
	}

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return Token{}, fmt.Errorf("parsing token cache %s: %w", store.path, err)
	}
	if token.AccessToken == "" {
		return Token{}, fmt.Errorf("token cache %s has no access_token", store.path)
	}

	return token, nil
}

func (store *FileTokenStore) Save(token Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling token: %w", err)
	}
	data = append(data, '\n')

	if err := store.ensureDirectory(); err != nil {
		return err
	}
	if err := store.lock.Lock(); err != nil {
		return fmt.Errorf("locking token cache: %w", err)
	}
	defer store.lock.Unlock()

	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing token cache %s: %w", store.path, err)
	}

	return nil
}

// Clear removes the cached token. Clearing an empty cache is not an
// error, so logout stays idempotent.
func (store *FileTokenStore) Clear() error {
	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token cache %s: %w", store.path, err)
	}
	if err := os.Remove(store.path + ".lock"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token cache lock: %w", err)
	}
	return nil
}

// ensureDirectory creates the cache file's parent directory. The flock
// sidecar needs the directory present even on first Load.
func (store *FileTokenStore) ensureDirectory() error {
	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating token cache directory %s: %w", directory, err)
	}
	return nil
}

// DefaultTokenCachePath returns the token cache location. Checks the
// ARPEGGIO_CACHE_FILE environment variable first, then falls back to
// ~/.config/arpeggio/token.json.
func DefaultTokenCachePath() string {
	if envPath := os.Getenv("ARPEGGIO_CACHE_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback; this should rarely happen.
			return filepath.Join("/tmp", "arpeggio-token.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "arpeggio", "token.json")
}
