package service

import (
	"fmt"
	"sync"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/config"
	"github.com/devconnect/cli/pkg/logger"
	"github.com/devconnect/cli/pkg/output"
	"github.com/devconnect/cli/pkg/state"
	"github.com/devconnect/cli/pkg/toast"
)

// FeedAPI is the remote collaborator the feed controller depends on
type FeedAPI interface {
	GetFeed() ([]api.User, error)
	SendRequest(decision api.FeedDecision, userID string) (string, error)
}

type liveFeedAPI struct{}

func (liveFeedAPI) GetFeed() ([]api.User, error) { return api.GetFeed() }
func (liveFeedAPI) SendRequest(d api.FeedDecision, userID string) (string, error) {
	return api.SendRequest(d, userID)
}

// FeedService loads the candidate queue and submits review decisions.
// Only the head candidate is ever displayed; a successful review removes
// it by id and the next candidate surfaces.
type FeedService struct {
	api    FeedAPI
	store  *state.FeedStore
	toasts *toast.Center

	// alwaysRefetch makes Load fetch even when the store is already
	// loaded. Off by default; the loaded store is reused.
	alwaysRefetch bool

	mu      sync.Mutex
	loading bool
	pending map[string]struct{}
}

// NewFeedService creates a feed service over the live API
func NewFeedService(store *state.FeedStore, toasts *toast.Center) *FeedService {
	return &FeedService{
		api:           liveFeedAPI{},
		store:         store,
		toasts:        toasts,
		alwaysRefetch: config.GetBool("feed.always_refetch"),
		pending:       make(map[string]struct{}),
	}
}

// Load fetches the candidate queue if the store is unloaded. A load
// failure raises an error notification and reports ErrLoginRequired,
// since an expired session is the most common cause.
func (s *FeedService) Load() error {
	if s.store.Loaded() && !s.alwaysRefetch {
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
	items, err := s.api.GetFeed()
	if err != nil {
		s.toasts.Error(userMessage(err))
		logger.Error("Failed to fetch feed", "error", err)
		return ErrLoginRequired
	}

	if !s.store.ReplaceIfGeneration(gen, items) {
		logger.Debug("Discarded stale feed response")
	}
	return nil
}

// Review submits a decision on a candidate. On success the candidate is
// removed from the queue; on failure it stays in place so the decision
// can be retried. A second review for the same candidate while one is
// in flight is refused.
func (s *FeedService) Review(decision api.FeedDecision, candidateID string) error {
	if !decision.Valid() {
		return fmt.Errorf("invalid decision: %q", decision)
	}
	if candidateID == "" {
		return fmt.Errorf("candidate id cannot be empty")
	}

	s.mu.Lock()
	if _, busy := s.pending[candidateID]; busy {
		s.mu.Unlock()
		return ErrActionPending
	}
	s.pending[candidateID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pending, candidateID)
		s.mu.Unlock()
	}()

	return submit(s.toasts,
		func() (string, error) { return s.api.SendRequest(decision, candidateID) },
		func() { s.store.RemoveByID(candidateID) })
}

// Pending reports whether a review for the candidate is in flight.
// The UI disables both decision actions while it is.
func (s *FeedService) Pending(candidateID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.pending[candidateID]
	return busy
}

// Current returns the head candidate, if the loaded queue has one
func (s *FeedService) Current() (api.User, bool) {
	return s.store.Head()
}

// ShowCurrent displays the head candidate, or the empty-state message
func (s *FeedService) ShowCurrent() error {
	if !s.store.Loaded() {
		if err := s.Load(); err != nil {
			return err
		}
	}

	head, ok := s.store.Head()
	if !ok {
		fmt.Println("No new developers to review. Check back later!")
		return nil
	}

	output.PrintInfo("Next up (%d in your feed)", s.store.Len())
	fmt.Printf("\n")
	displayUserCard(head)
	fmt.Printf("\nReview with 'devconnect feed review interested' or 'devconnect feed review ignore'\n")
	return nil
}

func displayUserCard(u api.User) {
	keyValues := map[string]interface{}{
		"Name": u.FullName(),
		"ID":   u.ID,
	}
	if u.Age > 0 {
		keyValues["Age"] = u.Age
	}
	if u.Gender != "" {
		keyValues["Gender"] = u.Gender
	}
	if u.About != "" {
		keyValues["About"] = u.About
	}
	if len(u.Skills) > 0 {
		keyValues["Skills"] = fmt.Sprintf("%v", u.Skills)
	}
	if u.PhotoURL != "" {
		keyValues["Photo"] = u.PhotoURL
	}
	output.PrintRecord("", keyValues)
}
