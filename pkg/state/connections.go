package state

import (
	"sync"

	"github.com/devconnect/cli/pkg/api"
)

// ConnectionStore holds the accepted connection list, keyed by user id.
// Read-only once loaded; there are no per-item mutations.
type ConnectionStore struct {
	mu     sync.RWMutex
	items  []api.User
	loaded bool
}

// NewConnectionStore creates an unloaded connection store
func NewConnectionStore() *ConnectionStore {
	return &ConnectionStore{}
}

// Replace sets the full connection list and marks the store loaded
func (s *ConnectionStore) Replace(items []api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]api.User(nil), items...)
	s.loaded = true
}

// Clear returns the store to the unloaded state
func (s *ConnectionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loaded = false
}

// Snapshot returns a copy of the list and whether the store is loaded
func (s *ConnectionStore) Snapshot() ([]api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, false
	}
	return append([]api.User(nil), s.items...), true
}

// Loaded reports whether a fetch has populated the store
func (s *ConnectionStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Len returns the number of connections
func (s *ConnectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
