package guard

import (
	"net/url"
	"strings"

	"github.com/staffihq/staffi-go/internal/nav"
	"github.com/staffihq/staffi-go/internal/session"
)

// ReturnURLParam is the query parameter carrying the originally requested
// path across a forced redirect to login.
const ReturnURLParam = "returnUrl"

// Route annotates a path prefix with the guards required to enter it.
type Route struct {
	Prefix string
	Guards Chain
}

// Table resolves a target path to its guard chain. Routes are matched in
// declaration order, so more specific prefixes must be declared first.
type Table struct {
	routes []Route
}

// NewTable creates a table from routes.
func NewTable(routes []Route) *Table {
	return &Table{routes: routes}
}

// DefaultTable mirrors the application's navigation surface: a public login
// root, an admin area for ADMIN and HR, two admin-only pages inside it, and an
// employee area for any authenticated user.
func DefaultTable() *Table {
	return NewTable([]Route{
		{Prefix: "/admin/audit-logs", Guards: Chain{Authenticated, Privileged, AdminOnly}},
		{Prefix: "/admin/user-management", Guards: Chain{Authenticated, Privileged, AdminOnly}},
		{Prefix: "/admin", Guards: Chain{Authenticated, Privileged}},
		{Prefix: "/employees", Guards: Chain{Authenticated}},
		{Prefix: "/", Guards: nil},
	})
}

// Resolve returns the guard chain for target. Prefixes match on whole path
// segments: "/admin" guards "/admin" and "/admin/rooms" but not "/administration".
func (t *Table) Resolve(target string) Chain {
	for _, r := range t.routes {
		if matchesPrefix(target, r.Prefix) {
			return r.Guards
		}
	}
	return nil
}

func matchesPrefix(target, prefix string) bool {
	if prefix == "/" {
		return true
	}
	if !strings.HasPrefix(target, prefix) {
		return false
	}
	return len(target) == len(prefix) || target[len(prefix)] == '/' || target[len(prefix)] == '?'
}

// Router ties the table, session, and navigator together: one call per
// navigation attempt, ending in either the target or the redirect.
type Router struct {
	table *Table
	sess  *session.Session
	nav   nav.Navigator
}

// NewRouter creates a router.
func NewRouter(table *Table, sess *session.Session, navigator nav.Navigator) *Router {
	return &Router{table: table, sess: sess, nav: navigator}
}

// Go evaluates the guards for target and commits the resulting navigation.
// The returned decision tells the caller whether the destination was entered.
func (r *Router) Go(target string) Decision {
	d := r.table.Resolve(target).Evaluate(r.sess, target)
	if d.Allow {
		r.nav.Navigate(target, nil, false)
		return d
	}
	var q url.Values
	if d.ReturnURL != "" {
		q = url.Values{ReturnURLParam: {d.ReturnURL}}
	}
	r.nav.Navigate(d.RedirectPath, q, false)
	return d
}
