// Package state holds the normalized in-memory entity stores shared by
// every controller: the session user, the candidate feed, the incoming
// request list and the accepted connection list. Stores hold no fetch or
// ordering logic; they only support replace, clear and remove-by-id, and
// every mutation is a pure function of the previous value under the lock.
package state

import (
	"sync"

	"github.com/devconnect/cli/pkg/api"
)

// UserStore holds the session user. It is either empty (unauthenticated)
// or holds exactly one user; no partial state is observable.
type UserStore struct {
	mu   sync.RWMutex
	user api.User
	set  bool
}

// NewUserStore creates an empty session store
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Replace sets or overwrites the session user
func (s *UserStore) Replace(u api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.set = true
}

// Clear returns the store to the unauthenticated state
func (s *UserStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = api.User{}
	s.set = false
}

// Get returns the session user and whether one is present
func (s *UserStore) Get() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.set
}
