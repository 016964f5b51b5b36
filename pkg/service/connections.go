package service

import (
	"fmt"
	"sync"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/logger"
	"github.com/devconnect/cli/pkg/output"
	"github.com/devconnect/cli/pkg/state"
	"github.com/devconnect/cli/pkg/toast"
)

// ConnectionAPI is the remote collaborator the connection controller
// depends on
type ConnectionAPI interface {
	GetConnections() ([]api.User, error)
}

type liveConnectionAPI struct{}

func (liveConnectionAPI) GetConnections() ([]api.User, error) { return api.GetConnections() }

// ConnectionService loads the accepted connection list. Read-only; a
// failure raises an error notification but never routes to login, since
// having no connections is not an authentication failure.
type ConnectionService struct {
	api    ConnectionAPI
	store  *state.ConnectionStore
	toasts *toast.Center

	mu      sync.Mutex
	loading bool
}

// NewConnectionService creates a connection service over the live API
func NewConnectionService(store *state.ConnectionStore, toasts *toast.Center) *ConnectionService {
	return &ConnectionService{
		api:    liveConnectionAPI{},
		store:  store,
		toasts: toasts,
	}
}

// Load fetches the connection list if the store is unloaded
func (s *ConnectionService) Load() error {
	if s.store.Loaded() {
		return nil
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	items, err := s.api.GetConnections()
	if err != nil {
		s.toasts.Error(userMessage(err))
		logger.Error("Failed to fetch connections", "error", err)
		return err
	}

	s.store.Replace(items)
	return nil
}

// Show displays the accepted connection list
func (s *ConnectionService) Show() error {
	if err := s.Load(); err != nil {
		return err
	}

	connections, _ := s.store.Snapshot()
	if len(connections) == 0 {
		fmt.Println("No connections yet. Start reviewing your feed!")
		return nil
	}

	output.PrintInfo("Your Connections (%d total)", len(connections))
	fmt.Printf("\n")

	for i, user := range connections {
		fmt.Printf("[%d] %s\n", i+1, user.FullName())
		if user.Age > 0 && user.Gender != "" {
			fmt.Printf("    %d years old, %s\n", user.Age, user.Gender)
		}
		if user.About != "" {
			fmt.Printf("    About: %s\n", truncate(user.About, 60))
		}
		fmt.Printf("\n")
	}

	return nil
}
