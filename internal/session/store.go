// Package session owns the persisted credential and the validity checks
// derived from it. The token is an opaque bearer credential issued by the
// backend; the client decodes its claims but never verifies the signature.
// The backend remains the authority - everything here is UX gating only.
package session

import (
	"github.com/staffihq/staffi-go/internal/domain"
)

// UserProfile is the identity snapshot persisted alongside the token.
// It mirrors the backend's login response body.
type UserProfile struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

// Store persists the token and profile across client restarts. Implementations
// must keep the two values consistent: Clear removes both so the store never
// holds a profile for a credential that is gone (or vice versa after logout).
type Store interface {
	// Token returns the raw token, or "" when none is stored.
	Token() string

	// SetToken persists the raw token.
	SetToken(token string) error

	// Profile returns the stored profile, or false when none is stored.
	Profile() (*UserProfile, bool)

	// SetProfile persists the profile.
	SetProfile(p *UserProfile) error

	// Clear removes the token and the profile together.
	Clear() error
}
