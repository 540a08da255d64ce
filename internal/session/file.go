package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/staffihq/staffi-go/internal/domain"
)

// fileState is the on-disk shape. The key names match the browser client this
// store replaces (localStorage "authToken" and "userData"), so a migration
// between the two is a straight copy.
type fileState struct {
	AuthToken string          `json:"authToken,omitempty"`
	UserData  json.RawMessage `json:"userData,omitempty"`
}

// FileStore persists the session to a single JSON file with 0600 permissions.
// It survives client restarts and is cleared only by explicit action (logout,
// detected expiry, 401). Writes go through a temp file and rename so a crash
// never leaves a half-written session behind.
type FileStore struct {
	mu    sync.Mutex
	path  string
	state fileState
}

// OpenFileStore loads (or lazily creates) the session file at path.
// A missing file is an empty session, not an error.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrStoreUnavailable, path, err)
	}

	// A corrupt session file is treated as no session. Fail-closed: the user
	// logs in again rather than the client crashing on startup.
	if err := json.Unmarshal(data, &s.state); err != nil {
		s.state = fileState{}
	}
	return s, nil
}

// Token returns the stored token, or "".
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AuthToken
}

// SetToken persists the token.
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AuthToken = token
	return s.persistLocked()
}

// Profile returns the stored profile, or false. A stored blob that no longer
// unmarshals is reported as absent.
func (s *FileStore) Profile() (*UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.UserData) == 0 {
		return nil, false
	}
	var p UserProfile
	if err := json.Unmarshal(s.state.UserData, &p); err != nil {
		return nil, false
	}
	return &p, true
}

// SetProfile persists the profile.
func (s *FileStore) SetProfile(p *UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.state.UserData = nil
		return s.persistLocked()
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	s.state.UserData = data
	return s.persistLocked()
}

// Clear removes the token and profile together.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fileState{}
	return s.persistLocked()
}

func (s *FileStore) persistLocked() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrStoreUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write session: %w", domain.ErrStoreUnavailable, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod session: %w", domain.ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close session: %w", domain.ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename session: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Ensure FileStore implements Store at compile time.
var _ Store = (*FileStore)(nil)
