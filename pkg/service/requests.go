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

// RequestAPI is the remote collaborator the request controller depends on
type RequestAPI interface {
	GetReceivedRequests() ([]api.ConnectionRequest, error)
	ReviewRequest(decision api.ReviewDecision, requestID string) (string, error)
}

type liveRequestAPI struct{}

func (liveRequestAPI) GetReceivedRequests() ([]api.ConnectionRequest, error) {
	return api.GetReceivedRequests()
}
func (liveRequestAPI) ReviewRequest(d api.ReviewDecision, requestID string) (string, error) {
	return api.ReviewRequest(d, requestID)
}

// RequestService loads the incoming request list and resolves requests.
// Distinct requests may be resolved concurrently; the same request id
// cannot be submitted twice while a resolution for it is in flight.
type RequestService struct {
	api    RequestAPI
	store  *state.RequestStore
	toasts *toast.Center

	mu      sync.Mutex
	loading bool
	pending map[string]struct{}
}

// NewRequestService creates a request service over the live API
func NewRequestService(store *state.RequestStore, toasts *toast.Center) *RequestService {
	return &RequestService{
		api:     liveRequestAPI{},
		store:   store,
		toasts:  toasts,
		pending: make(map[string]struct{}),
	}
}

// Load fetches the incoming request list if the store is unloaded
func (s *RequestService) Load() error {
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

	gen := s.store.Generation()
	items, err := s.api.GetReceivedRequests()
	if err != nil {
		s.toasts.Error(userMessage(err))
		logger.Error("Failed to fetch requests", "error", err)
		return err
	}

	if !s.store.ReplaceIfGeneration(gen, items) {
		logger.Debug("Discarded stale request response")
	}
	return nil
}

// Resolve accepts or rejects a request. On success the request leaves
// the list; on failure it stays and the id is cleared from the pending
// set so a retry is possible.
func (s *RequestService) Resolve(decision api.ReviewDecision, requestID string) error {
	if !decision.Valid() {
		return fmt.Errorf("invalid decision: %q", decision)
	}
	if requestID == "" {
		return fmt.Errorf("request id cannot be empty")
	}

	s.mu.Lock()
	if _, busy := s.pending[requestID]; busy {
		s.mu.Unlock()
		return ErrActionPending
	}
	s.pending[requestID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pending, requestID)
		s.mu.Unlock()
	}()

	return submit(s.toasts,
		func() (string, error) { return s.api.ReviewRequest(decision, requestID) },
		func() { s.store.RemoveByID(requestID) })
}

// Pending reports whether a resolution for the request is in flight.
// Both action buttons for the item are disabled while it is.
func (s *RequestService) Pending(requestID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.pending[requestID]
	return busy
}

// Show displays the incoming request list in fetch order
func (s *RequestService) Show() error {
	if err := s.Load(); err != nil {
		return err
	}

	requests, _ := s.store.Snapshot()
	if len(requests) == 0 {
		fmt.Println("No pending connection requests")
		return nil
	}

	output.PrintInfo("Incoming Connection Requests (%d total)", len(requests))
	fmt.Printf("\n")

	for i, req := range requests {
		from := req.FromUser
		fmt.Printf("[%d] %s\n", i+1, from.FullName())
		fmt.Printf("    Request ID: %s\n", req.ID)
		if from.Age > 0 && from.Gender != "" {
			fmt.Printf("    %d years old, %s\n", from.Age, from.Gender)
		}
		if from.About != "" {
			fmt.Printf("    About: %s\n", truncate(from.About, 60))
		}
		fmt.Printf("\n")
	}

	return nil
}

// truncate shortens s to maxLen runes, keeping rune boundaries intact
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
