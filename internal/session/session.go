package session

import (
	"github.com/staffihq/staffi-go/internal/domain"
)

// Session derives validity from the stored credential. It never mutates the
// store except through Login/Logout; guards and interceptors share one
// instance so everyone agrees on who is logged in.
type Session struct {
	store Store
	clock domain.Clock
}

// New wraps a store with a clock for expiry checks.
func New(store Store, clock domain.Clock) *Session {
	return &Session{store: store, clock: clock}
}

// Token returns the raw bearer token, or "" when none is stored.
func (s *Session) Token() string {
	return s.store.Token()
}

// IsExpired reports whether the stored token is unusable. Fail-closed: a
// missing token, an undecodable token, or a missing exp claim all count as
// expired. Expiry is inclusive - a token whose exp equals the current second
// is already expired.
func (s *Session) IsExpired() bool {
	token := s.store.Token()
	if token == "" {
		return true
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return domain.NowUnix(s.clock) >= claims.ExpiresAt.Unix()
}

// IsAuthenticated reports whether a non-expired token is present.
func (s *Session) IsAuthenticated() bool {
	return s.store.Token() != "" && !s.IsExpired()
}

// Role returns the profile's role, or false when no profile is stored.
func (s *Session) Role() (domain.Role, bool) {
	p, ok := s.store.Profile()
	if !ok {
		return "", false
	}
	return p.Role, true
}

// UserID returns the profile's user ID, or false when no profile is stored.
func (s *Session) UserID() (int64, bool) {
	p, ok := s.store.Profile()
	if !ok {
		return 0, false
	}
	return p.ID, true
}

// Profile returns the stored profile, or false.
func (s *Session) Profile() (*UserProfile, bool) {
	return s.store.Profile()
}

// Login persists the credential and profile from a successful login response.
func (s *Session) Login(token string, p *UserProfile) error {
	if err := s.store.SetToken(token); err != nil {
		return err
	}
	return s.store.SetProfile(p)
}

// Logout clears the credential and profile together. Idempotent: clearing an
// already-cleared session is a no-op, so a user-initiated logout racing a
// 401-triggered clear needs no extra coordination.
func (s *Session) Logout() error {
	return s.store.Clear()
}
