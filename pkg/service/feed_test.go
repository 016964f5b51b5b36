package service

import (
	"errors"
	"testing"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/state"
	"github.com/devconnect/cli/pkg/toast"
)

type fakeFeedAPI struct {
	feed     []api.User
	feedErr  error
	feedHits int

	sendMsg  string
	sendErr  error
	sendHits int
}

func (f *fakeFeedAPI) GetFeed() ([]api.User, error) {
	f.feedHits++
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.feed, nil
}

func (f *fakeFeedAPI) SendRequest(d api.FeedDecision, userID string) (string, error) {
	f.sendHits++
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.sendMsg, nil
}

func newFeedService(fake FeedAPI, store *state.FeedStore, toasts *toast.Center) *FeedService {
	return &FeedService{
		api:     fake,
		store:   store,
		toasts:  toasts,
		pending: make(map[string]struct{}),
	}
}

// TestFeedLoad validates that Load populates the store from the remote
func TestFeedLoad(t *testing.T) {
	fake := &fakeFeedAPI{feed: []api.User{{ID: "a"}, {ID: "b"}}}
	store := state.NewFeedStore()
	svc := newFeedService(fake, store, toast.NewCenter())

	if err := svc.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("Expected 2 candidates, got %d", store.Len())
	}
	head, _ := store.Head()
	if head.ID != "a" {
		t.Errorf("Expected head 'a', got '%s'", head.ID)
	}
}

// TestFeedLoadSkipsWhenLoaded validates the fetch-once guard
func TestFeedLoadSkipsWhenLoaded(t *testing.T) {
	fake := &fakeFeedAPI{feed: []api.User{{ID: "a"}}}
	store := state.NewFeedStore()
	svc := newFeedService(fake, store, toast.NewCenter())

	svc.Load()
	svc.Load()
	svc.Load()

	if fake.feedHits != 1 {
		t.Errorf("Expected 1 fetch, got %d", fake.feedHits)
	}
}

// TestFeedLoadAlwaysRefetch validates the opt-in refetch behavior
func TestFeedLoadAlwaysRefetch(t *testing.T) {
	fake := &fakeFeedAPI{feed: []api.User{{ID: "a"}}}
	store := state.NewFeedStore()
	svc := newFeedService(fake, store, toast.NewCenter())
	svc.alwaysRefetch = true

	svc.Load()
	svc.Load()

	if fake.feedHits != 2 {
		t.Errorf("Expected 2 fetches with always_refetch, got %d", fake.feedHits)
	}
}

// TestFeedLoadFailure validates that a failed load raises a notification
// and routes to login
func TestFeedLoadFailure(t *testing.T) {
	fake := &fakeFeedAPI{feedErr: &api.APIError{StatusCode: 401, Message: "Session expired"}}
	store := state.NewFeedStore()
	toasts := toast.NewCenter()
	svc := newFeedService(fake, store, toasts)

	err := svc.Load()
	if !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("Expected ErrLoginRequired, got %v", err)
	}
	if store.Loaded() {
		t.Error("Store should stay unloaded after a failed fetch")
	}

	visible := toasts.Visible()
	if len(visible) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(visible))
	}
	if visible[0].Message != "Session expired" {
		t.Errorf("Expected server message, got '%s'", visible[0].Message)
	}
}

// TestFeedReviewSuccess validates that a positive decision removes the
// reviewed candidate and the next one surfaces
func TestFeedReviewSuccess(t *testing.T) {
	fake := &fakeFeedAPI{
		feed:    []api.User{{ID: "a", FirstName: "Ada"}, {ID: "b", FirstName: "Ben"}},
		sendMsg: "Ada is interested in Ben",
	}
	store := state.NewFeedStore()
	toasts := toast.NewCenter()
	svc := newFeedService(fake, store, toasts)
	svc.Load()

	if err := svc.Review(api.DecisionInterested, "a"); err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	head, ok := svc.Current()
	if !ok {
		t.Fatal("Expected a next candidate")
	}
	if head.ID != "b" {
		t.Errorf("Expected head 'b' after review, got '%s'", head.ID)
	}

	visible := toasts.Visible()
	if len(visible) != 1 || visible[0].Severity != toast.SeveritySuccess {
		t.Fatalf("Expected 1 success notification, got %+v", visible)
	}
	if visible[0].Message != "Ada is interested in Ben" {
		t.Errorf("Expected server message in notification, got '%s'", visible[0].Message)
	}
}

// TestFeedReviewFailure validates that a failed submission leaves the
// candidate in place for retry
func TestFeedReviewFailure(t *testing.T) {
	fake := &fakeFeedAPI{
		feed:    []api.User{{ID: "a"}, {ID: "b"}},
		sendErr: errors.New("network down"),
	}
	store := state.NewFeedStore()
	toasts := toast.NewCenter()
	svc := newFeedService(fake, store, toasts)
	svc.Load()

	if err := svc.Review(api.DecisionIgnored, "a"); err == nil {
		t.Fatal("Expected an error from the failed review")
	}

	head, _ := svc.Current()
	if head.ID != "a" {
		t.Errorf("Expected head 'a' to survive the failure, got '%s'", head.ID)
	}

	visible := toasts.Visible()
	if len(visible) != 1 || visible[0].Severity != toast.SeverityError {
		t.Fatalf("Expected 1 error notification, got %+v", visible)
	}

	// The candidate is retryable after the failure
	fake.sendErr = nil
	fake.sendMsg = "done"
	if err := svc.Review(api.DecisionIgnored, "a"); err != nil {
		t.Errorf("Retry should succeed, got %v", err)
	}
}

// TestFeedReviewValidation validates input rejection before any remote call
func TestFeedReviewValidation(t *testing.T) {
	fake := &fakeFeedAPI{}
	svc := newFeedService(fake, state.NewFeedStore(), toast.NewCenter())

	tests := []struct {
		name        string
		decision    api.FeedDecision
		candidateID string
	}{
		{"invalid decision", api.FeedDecision("maybe"), "a"},
		{"empty decision", api.FeedDecision(""), "a"},
		{"empty candidate id", api.DecisionInterested, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Review(tt.decision, tt.candidateID); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}

	if fake.sendHits != 0 {
		t.Errorf("Expected no remote calls for invalid input, got %d", fake.sendHits)
	}
}
