package state

import (
	"sync"

	"github.com/devconnect/cli/pkg/api"
)

// RequestStore holds the incoming connection request list, keyed by
// request id and kept in fetch order. No re-sorting happens after a
// partial resolution.
type RequestStore struct {
	mu     sync.RWMutex
	items  []api.ConnectionRequest
	loaded bool
	gen    uint64
}

// NewRequestStore creates an unloaded request store
func NewRequestStore() *RequestStore {
	return &RequestStore{}
}

// Replace sets the full request list and marks the store loaded
func (s *RequestStore) Replace(items []api.ConnectionRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]api.ConnectionRequest(nil), items...)
	s.loaded = true
	s.gen++
}

// ReplaceIfGeneration applies Replace only if the store's generation
// still matches gen.
func (s *RequestStore) ReplaceIfGeneration(gen uint64, items []api.ConnectionRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.items = append([]api.ConnectionRequest(nil), items...)
	s.loaded = true
	s.gen++
	return true
}

// Clear returns the store to the unloaded state
func (s *RequestStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loaded = false
	s.gen++
}

// RemoveByID filters the request with the given id out of the list.
// Removing an absent id is a no-op.
func (s *RequestStore) RemoveByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return
	}
	filtered := s.items[:0:0]
	for _, r := range s.items {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	s.items = filtered
}

// Get returns the request with the given id
func (s *RequestStore) Get(id string) (api.ConnectionRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.items {
		if r.ID == id {
			return r, true
		}
	}
	return api.ConnectionRequest{}, false
}

// Snapshot returns a copy of the list and whether the store is loaded
func (s *RequestStore) Snapshot() ([]api.ConnectionRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, false
	}
	return append([]api.ConnectionRequest(nil), s.items...), true
}

// Loaded reports whether a fetch has populated the store
func (s *RequestStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Len returns the number of pending requests
func (s *RequestStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Generation returns the store's current generation counter
func (s *RequestStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}
