package state

// Stores is the injected application-state container. Each controller
// owns a disjoint store; the container exists so composition happens in
// one place instead of through ambient globals.
type Stores struct {
	Session     *UserStore
	Feed        *FeedStore
	Requests    *RequestStore
	Connections *ConnectionStore
}

// New creates an empty set of stores
func New() *Stores {
	return &Stores{
		Session:     NewUserStore(),
		Feed:        NewFeedStore(),
		Requests:    NewRequestStore(),
		Connections: NewConnectionStore(),
	}
}

// ClearAll resets every store to the unloaded state. Used on logout.
func (s *Stores) ClearAll() {
	s.Session.Clear()
	s.Feed.Clear()
	s.Requests.Clear()
	s.Connections.Clear()
}
