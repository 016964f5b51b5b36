// Package session decides whether a valid authenticated session exists
// before any protected controller runs. The gate resolves once per
// mount; feed, request and connection controllers assume it already has.
package session

import (
	"sync"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/logger"
	"github.com/devconnect/cli/pkg/state"
	"github.com/devconnect/cli/pkg/toast"
)

// State is the gate's resolution state
type State string

const (
	StateResolving       State = "resolving"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// ProfileFetcher fetches the current user's profile. A 401-shaped error
// is the distinguished "not authenticated" signal.
type ProfileFetcher func() (*api.User, error)

// Gate resolves the session exactly once and gates protected
// controllers behind the result.
type Gate struct {
	mu       sync.Mutex
	state    State
	resolved bool

	fetch   ProfileFetcher
	session *state.UserStore
	toasts  *toast.Center

	listenersMu  sync.Mutex
	nextListener int
	listeners    map[int]func()
}

// NewGate creates a gate in the resolving state
func NewGate(session *state.UserStore, toasts *toast.Center, fetch ProfileFetcher) *Gate {
	return &Gate{
		state:     StateResolving,
		fetch:     fetch,
		session:   session,
		toasts:    toasts,
		listeners: make(map[int]func()),
	}
}

// Resolve calls the profile collaborator once and transitions to
// authenticated or unauthenticated. Subsequent calls return the already
// resolved state without refetching.
func (g *Gate) Resolve() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resolved {
		return g.state
	}
	g.resolved = true

	user, err := g.fetch()
	if err != nil {
		if api.IsUnauthorized(err) {
			msg := api.ServerMessage(err)
			if msg == "" {
				msg = "Please log in to continue"
			}
			g.toasts.Error(msg)
			logger.Debug("Session gate: not authenticated")
		} else {
			// Treated the same for the UI, but distinguishable in logs
			g.toasts.Error("Please log in to continue")
			logger.Error("Session gate: profile fetch failed", "error", err)
		}
		g.state = StateUnauthenticated
		return g.state
	}

	g.session.Replace(*user)
	g.state = StateAuthenticated
	logger.Debug("Session gate: authenticated", "user_id", user.ID)
	return g.state
}

// State returns the gate's current state without resolving
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Authenticated reports whether the gate resolved to a valid session
func (g *Gate) Authenticated() bool {
	return g.State() == StateAuthenticated
}

// OnLoginRequest registers a callback for the login-request signal and
// returns an unsubscribe function. Any component can raise the signal
// without holding a reference to the login flow.
func (g *Gate) OnLoginRequest(fn func()) func() {
	g.listenersMu.Lock()
	id := g.nextListener
	g.nextListener++
	g.listeners[id] = fn
	g.listenersMu.Unlock()

	return func() {
		g.listenersMu.Lock()
		delete(g.listeners, id)
		g.listenersMu.Unlock()
	}
}

// RequestLogin broadcasts the login-request signal to every listener
func (g *Gate) RequestLogin() {
	g.listenersMu.Lock()
	fns := make([]func(), 0, len(g.listeners))
	for _, fn := range g.listeners {
		fns = append(fns, fn)
	}
	g.listenersMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
