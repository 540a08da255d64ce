package domain

import "errors"

// Sentinel errors for client-side error conditions.
// Use errors.Is() for matching - never compare error strings.
var (
	// Session / credential errors
	ErrUnauthenticated = errors.New("no credential present")
	ErrSessionExpired  = errors.New("session has expired")

	// Authorization errors
	ErrInsufficientRole = errors.New("insufficient role")

	// Server-side rejection despite a client-side-valid token
	// (clock skew, revocation, tampering). Raised by the transport layer.
	ErrAuthorizationRejected = errors.New("authorization rejected by server")

	// Storage errors
	ErrStoreUnavailable = errors.New("session store unavailable")

	// Configuration errors
	ErrConfigRequired = errors.New("required configuration key missing")
)

// IsAuthFailure returns true if the error represents a credential problem
// that should send the user back to the login page.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrAuthorizationRejected)
}
