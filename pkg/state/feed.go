package state

import (
	"sync"

	"github.com/devconnect/cli/pkg/api"
)

// FeedStore holds the ordered candidate queue. The queue is consumed
// strictly from the front: only the head candidate is ever shown, and a
// review removes it by identity, never by position.
//
// An unloaded store is distinct from a loaded-and-empty one; callers use
// the distinction to decide whether to fetch.
type FeedStore struct {
	mu     sync.RWMutex
	items  []api.User
	loaded bool
	gen    uint64
}

// NewFeedStore creates an unloaded feed store
func NewFeedStore() *FeedStore {
	return &FeedStore{}
}

// Replace sets the full candidate sequence and marks the store loaded
func (s *FeedStore) Replace(items []api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]api.User(nil), items...)
	s.loaded = true
	s.gen++
}

// ReplaceIfGeneration applies Replace only if the store's generation
// still matches gen. A slow fetch that raced a later Clear or Replace is
// rejected instead of racing back stale data.
func (s *FeedStore) ReplaceIfGeneration(gen uint64, items []api.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.items = append([]api.User(nil), items...)
	s.loaded = true
	s.gen++
	return true
}

// Clear returns the store to the unloaded state
func (s *FeedStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loaded = false
	s.gen++
}

// RemoveByID filters the candidate with the given id out of the queue.
// Removing an absent id is a no-op.
func (s *FeedStore) RemoveByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return
	}
	filtered := s.items[:0:0]
	for _, u := range s.items {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	s.items = filtered
}

// Head returns the candidate at the front of the queue
func (s *FeedStore) Head() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded || len(s.items) == 0 {
		return api.User{}, false
	}
	return s.items[0], true
}

// Snapshot returns a copy of the queue and whether the store is loaded
func (s *FeedStore) Snapshot() ([]api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, false
	}
	return append([]api.User(nil), s.items...), true
}

// Loaded reports whether a fetch has populated the store
func (s *FeedStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Len returns the number of candidates in the queue
func (s *FeedStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Generation returns the store's current generation counter
func (s *FeedStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}
