// Package guard gates navigation to protected areas before a destination is
// entered. Guards run synchronously and read only local session state, so a
// navigation never suspends on a guard. Ordering is load-bearing: the
// authentication guard always runs before any role guard, so an
// authenticated-but-wrong-role user is never told to log in and an
// unauthenticated user is never told "access denied".
package guard

import (
	"github.com/staffihq/staffi-go/internal/session"
)

// LoginPath is the public root the guards redirect to.
const LoginPath = "/"

// AdminDashboardPath is where admin-only rejections land: the user is already
// authenticated and privileged, so the login page would be wrong.
const AdminDashboardPath = "/admin/dashboard"

// Decision is the outcome of evaluating guards for one navigation attempt.
// When Allow is false, RedirectPath is always set.
type Decision struct {
	Allow        bool
	RedirectPath string
	// ReturnURL is the originally requested path, carried as the returnUrl
	// query parameter so the user can be sent back after logging in. Empty
	// means the redirect carries no returnUrl.
	ReturnURL string
}

// Allowed is the passing decision.
func Allowed() Decision {
	return Decision{Allow: true}
}

// Redirect builds a denying decision.
func Redirect(path, returnURL string) Decision {
	return Decision{RedirectPath: path, ReturnURL: returnURL}
}

// Guard evaluates one predicate for a navigation to targetPath.
type Guard func(sess *session.Session, targetPath string) Decision

// Authenticated denies when no valid session exists. An expired credential is
// cleared on the way out so it cannot linger in the store.
func Authenticated(sess *session.Session, targetPath string) Decision {
	if sess.Token() == "" {
		return Redirect(LoginPath, targetPath)
	}
	if sess.IsExpired() {
		// Best effort: a failing store write must not block the redirect.
		_ = sess.Logout()
		return Redirect(LoginPath, targetPath)
	}
	return Allowed()
}

// Privileged denies unless the role is ADMIN or HR. It rechecks
// authentication first so it stays safe even if composed without
// Authenticated in front of it.
func Privileged(sess *session.Session, targetPath string) Decision {
	if !sess.IsAuthenticated() {
		return Redirect(LoginPath, targetPath)
	}
	role, ok := sess.Role()
	if !ok || !role.IsPrivileged() {
		// Authenticated but wrong role: back to the root, no returnUrl -
		// re-logging in would not change anything.
		return Redirect(LoginPath, "")
	}
	return Allowed()
}

// AdminOnly denies unless the role is exactly ADMIN. HR users land on the
// admin dashboard they are allowed to see, not on the login page.
func AdminOnly(sess *session.Session, targetPath string) Decision {
	if !sess.IsAuthenticated() {
		return Redirect(LoginPath, targetPath)
	}
	role, ok := sess.Role()
	if !ok || !role.IsAdmin() {
		return Redirect(AdminDashboardPath, "")
	}
	return Allowed()
}

// Chain is an ordered list of guards. Evaluation stops at the first denial.
type Chain []Guard

// Evaluate runs the chain in declared order. An empty chain allows.
func (c Chain) Evaluate(sess *session.Session, targetPath string) Decision {
	for _, g := range c {
		if d := g(sess, targetPath); !d.Allow {
			return d
		}
	}
	return Allowed()
}
