package session

import "sync"

// MemStore is an in-memory Store. It backs ephemeral runs and tests; nothing
// survives process exit.
type MemStore struct {
	mu      sync.Mutex
	token   string
	profile *UserProfile
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Token returns the stored token, or "".
func (s *MemStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores the token.
func (s *MemStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Profile returns the stored profile, or false.
func (s *MemStore) Profile() (*UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, false
	}
	p := *s.profile
	return &p, true
}

// SetProfile stores the profile.
func (s *MemStore) SetProfile(p *UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.profile = nil
		return nil
	}
	cp := *p
	s.profile = &cp
	return nil
}

// Clear removes the token and profile together. Clearing an empty store is a
// no-op, which keeps concurrent logout and 401-triggered clears safe.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	return nil
}

// Ensure MemStore implements Store at compile time.
var _ Store = (*MemStore)(nil)
