package guard_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffihq/staffi-go/internal/domain"
	"github.com/staffihq/staffi-go/internal/domain/domaintest"
	"github.com/staffihq/staffi-go/internal/guard"
	"github.com/staffihq/staffi-go/internal/session"
)

func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(map[string]any{"exp": exp.Unix()})
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".c2ln"
}

// loggedIn returns a session holding a valid one-hour token and the given role.
func loggedIn(t *testing.T, role domain.Role) (*session.Session, *session.MemStore, *domaintest.FakeClock) {
	t.Helper()
	store := session.NewMemStore()
	clock := domaintest.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	sess := session.New(store, clock)
	require.NoError(t, sess.Login(
		makeToken(t, clock.Now().Add(time.Hour)),
		&session.UserProfile{ID: 1, Role: role},
	))
	return sess, store, clock
}

func TestAuthenticatedGuard(t *testing.T) {
	t.Run("no token redirects with returnUrl", func(t *testing.T) {
		sess := session.New(session.NewMemStore(), domain.RealClock{})

		d := guard.Authenticated(sess, "/admin/dashboard")

		assert.False(t, d.Allow)
		assert.Equal(t, guard.LoginPath, d.RedirectPath)
		assert.Equal(t, "/admin/dashboard", d.ReturnURL)
	})

	t.Run("expired token clears store and redirects", func(t *testing.T) {
		sess, store, clock := loggedIn(t, domain.RoleAdmin)
		clock.Advance(2 * time.Hour)

		d := guard.Authenticated(sess, "/employees/my-room")

		assert.False(t, d.Allow)
		assert.Equal(t, "/employees/my-room", d.ReturnURL)
		assert.Empty(t, store.Token(), "expired credentials must not linger")
		_, ok := store.Profile()
		assert.False(t, ok)
	})

	t.Run("valid token allows", func(t *testing.T) {
		sess, _, _ := loggedIn(t, domain.RoleEmployee)
		d := guard.Authenticated(sess, "/employees/dashboard")
		assert.True(t, d.Allow)
	})
}

func TestPrivilegedGuard(t *testing.T) {
	t.Run("unauthenticated redirects to login first", func(t *testing.T) {
		// Order invariant: an unauthenticated caller must be asked to log in,
		// never told "access denied" - even when the role would also fail.
		sess := session.New(session.NewMemStore(), domain.RealClock{})

		d := guard.Privileged(sess, "/admin/rooms")

		assert.False(t, d.Allow)
		assert.Equal(t, guard.LoginPath, d.RedirectPath)
		assert.Equal(t, "/admin/rooms", d.ReturnURL)
	})

	tests := []struct {
		name string
		role domain.Role
		want bool
	}{
		{"ADMIN", domain.RoleAdmin, true},
		{"HR", domain.RoleHR, true},
		{"EMPLOYEE", domain.RoleEmployee, false},
		{"lower-case admin", domain.Role("admin"), false},
		{"unknown role", domain.Role("SUPERUSER"), false},
		{"empty role", domain.Role(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, _, _ := loggedIn(t, tt.role)

			d := guard.Privileged(sess, "/admin/employees")

			assert.Equal(t, tt.want, d.Allow)
			if !tt.want {
				assert.Equal(t, guard.LoginPath, d.RedirectPath)
				assert.Empty(t, d.ReturnURL, "wrong role carries no returnUrl")
			}
		})
	}

	t.Run("token without profile is insufficient", func(t *testing.T) {
		store := session.NewMemStore()
		clock := domaintest.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
		sess := session.New(store, clock)
		require.NoError(t, store.SetToken(makeToken(t, clock.Now().Add(time.Hour))))

		d := guard.Privileged(sess, "/admin")

		assert.False(t, d.Allow)
	})
}

func TestAdminOnlyGuard(t *testing.T) {
	t.Run("ADMIN allowed", func(t *testing.T) {
		sess, _, _ := loggedIn(t, domain.RoleAdmin)
		d := guard.AdminOnly(sess, "/admin/audit-logs")
		assert.True(t, d.Allow)
	})

	t.Run("HR redirected to admin dashboard, not login", func(t *testing.T) {
		sess, _, _ := loggedIn(t, domain.RoleHR)

		d := guard.AdminOnly(sess, "/admin/audit-logs")

		assert.False(t, d.Allow)
		assert.Equal(t, guard.AdminDashboardPath, d.RedirectPath)
		assert.Empty(t, d.ReturnURL)
	})

	t.Run("unauthenticated still goes to login", func(t *testing.T) {
		sess := session.New(session.NewMemStore(), domain.RealClock{})
		d := guard.AdminOnly(sess, "/admin/user-management")
		assert.False(t, d.Allow)
		assert.Equal(t, guard.LoginPath, d.RedirectPath)
	})
}

func TestChainFirstDenialWins(t *testing.T) {
	sess, _, _ := loggedIn(t, domain.RoleEmployee)
	chain := guard.Chain{guard.Authenticated, guard.Privileged, guard.AdminOnly}

	d := chain.Evaluate(sess, "/admin/audit-logs")

	// Privileged denies before AdminOnly runs, so the redirect is the root,
	// not the admin dashboard.
	assert.False(t, d.Allow)
	assert.Equal(t, guard.LoginPath, d.RedirectPath)
}

func TestChainEmptyAllows(t *testing.T) {
	sess := session.New(session.NewMemStore(), domain.RealClock{})
	d := guard.Chain(nil).Evaluate(sess, "/")
	assert.True(t, d.Allow)
}
