package nav_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffihq/staffi-go/internal/nav"
)

func TestHistoryPush(t *testing.T) {
	h := nav.NewHistory("/")
	assert.Equal(t, "/", h.CurrentPath())

	h.Navigate("/admin/dashboard", nil, false)
	assert.Equal(t, "/admin/dashboard", h.CurrentPath())
	assert.Equal(t, 2, h.Len())

	assert.True(t, h.Back())
	assert.Equal(t, "/", h.CurrentPath())
	assert.False(t, h.Back(), "cannot go back past the first entry")
}

func TestHistoryReplace(t *testing.T) {
	h := nav.NewHistory("/")
	h.Navigate("/admin/employees", nil, false)

	q := url.Values{"returnUrl": {"/admin/employees"}}
	h.Navigate("/", q, true)

	assert.Equal(t, 2, h.Len(), "replace must not grow the stack")
	assert.Equal(t, "/", h.CurrentPath())
	assert.Equal(t, "/?returnUrl=%2Fadmin%2Femployees", h.Current().URL())

	// Back skips the replaced entry entirely.
	assert.True(t, h.Back())
	assert.Equal(t, "/", h.CurrentPath())
}

func TestEntryURL(t *testing.T) {
	tests := []struct {
		name  string
		entry nav.Entry
		want  string
	}{
		{"path only", nav.Entry{Path: "/admin"}, "/admin"},
		{"with query", nav.Entry{Path: "/", Query: url.Values{"returnUrl": {"/admin"}}}, "/?returnUrl=%2Fadmin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.URL())
		})
	}
}
