// Package nav abstracts the client's navigation surface: where the user
// currently is and how to move them somewhere else. Guards and the transport
// layer redirect through a Navigator instead of touching UI state directly.
package nav

import (
	"net/url"
	"sync"
)

// Navigator is the write side of navigation. Implementations must tolerate
// concurrent calls: a 401 arriving on an in-flight request may redirect while
// the user is navigating.
type Navigator interface {
	// CurrentPath returns the path of the current location, without query.
	CurrentPath() string

	// Navigate moves to path with the given query. When replace is true the
	// current history entry is replaced instead of pushed, so the user cannot
	// go back to the page that triggered the redirect.
	Navigate(path string, query url.Values, replace bool)
}

// Entry is one history location.
type Entry struct {
	Path  string
	Query url.Values
}

// URL renders the entry as path?query.
func (e Entry) URL() string {
	if len(e.Query) == 0 {
		return e.Path
	}
	return e.Path + "?" + e.Query.Encode()
}

// History is an in-memory Navigator with browser-like push/replace semantics.
type History struct {
	mu      sync.Mutex
	entries []Entry
}

// NewHistory creates a history positioned at start.
func NewHistory(start string) *History {
	return &History{entries: []Entry{{Path: start}}}
}

// CurrentPath returns the path of the top history entry.
func (h *History) CurrentPath() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1].Path
}

// Current returns the top history entry.
func (h *History) Current() Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1]
}

// Navigate pushes (or replaces) the top history entry.
func (h *History) Navigate(path string, query url.Values, replace bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entry := Entry{Path: path, Query: query}
	if replace {
		h.entries[len(h.entries)-1] = entry
		return
	}
	h.entries = append(h.entries, entry)
}

// Back pops the top entry. Returns false when already at the first entry.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) <= 1 {
		return false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return true
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Ensure History implements Navigator at compile time.
var _ Navigator = (*History)(nil)
