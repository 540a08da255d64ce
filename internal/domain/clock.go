package domain

import "time"

// Clock provides the current time. Production code uses RealClock; tests
// inject a deterministic clock so token-expiry behavior can be pinned to
// exact instants.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// NowUnix returns the current wall clock as Unix seconds. Token `exp` claims
// are expressed in Unix seconds, so expiry comparisons go through this helper.
func NowUnix(c Clock) int64 {
	return c.Now().Unix()
}

// Ensure RealClock implements Clock at compile time.
var _ Clock = RealClock{}
