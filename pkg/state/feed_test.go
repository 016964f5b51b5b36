package state

import (
	"testing"

	"github.com/devconnect/cli/pkg/api"
)

func candidates(ids ...string) []api.User {
	users := make([]api.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, api.User{ID: id, FirstName: "User" + id})
	}
	return users
}

// TestFeedStoreUnloadedVsEmpty validates that an unloaded store is
// distinct from a loaded-and-empty one
func TestFeedStoreUnloadedVsEmpty(t *testing.T) {
	store := NewFeedStore()

	if store.Loaded() {
		t.Error("New store should not be loaded")
	}
	if _, ok := store.Snapshot(); ok {
		t.Error("Snapshot of unloaded store should report not loaded")
	}

	store.Replace(nil)

	if !store.Loaded() {
		t.Error("Store should be loaded after Replace")
	}
	items, ok := store.Snapshot()
	if !ok {
		t.Error("Snapshot of loaded store should report loaded")
	}
	if len(items) != 0 {
		t.Errorf("Expected empty snapshot, got %d items", len(items))
	}
}

// TestFeedStoreRemoveByID validates removal by identity
func TestFeedStoreRemoveByID(t *testing.T) {
	store := NewFeedStore()
	store.Replace(candidates("a", "b", "c"))

	store.RemoveByID("b")

	items, _ := store.Snapshot()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items after removal, got %d", len(items))
	}
	if items[0].ID != "a" || items[1].ID != "c" {
		t.Errorf("Expected [a c], got [%s %s]", items[0].ID, items[1].ID)
	}
}

// TestFeedStoreRemoveByIDIdempotent validates that removing an absent id
// is a no-op
func TestFeedStoreRemoveByIDIdempotent(t *testing.T) {
	store := NewFeedStore()
	store.Replace(candidates("a", "b"))

	store.RemoveByID("a")
	store.RemoveByID("a")
	store.RemoveByID("missing")

	if store.Len() != 1 {
		t.Errorf("Expected 1 item, got %d", store.Len())
	}
	head, ok := store.Head()
	if !ok || head.ID != "b" {
		t.Errorf("Expected head 'b', got %v", head.ID)
	}
}

// TestFeedStoreRemoveOnUnloaded validates RemoveByID on an unloaded store
func TestFeedStoreRemoveOnUnloaded(t *testing.T) {
	store := NewFeedStore()

	// Must not panic or mark the store loaded
	store.RemoveByID("anything")

	if store.Loaded() {
		t.Error("RemoveByID should not mark an unloaded store loaded")
	}
}

// TestFeedStoreHead validates head access
func TestFeedStoreHead(t *testing.T) {
	store := NewFeedStore()

	if _, ok := store.Head(); ok {
		t.Error("Unloaded store should have no head")
	}

	store.Replace(candidates("x", "y"))

	head, ok := store.Head()
	if !ok {
		t.Fatal("Expected a head candidate")
	}
	if head.ID != "x" {
		t.Errorf("Expected head 'x', got '%s'", head.ID)
	}
}

// TestFeedStoreClear validates return to the unloaded state
func TestFeedStoreClear(t *testing.T) {
	store := NewFeedStore()
	store.Replace(candidates("a"))

	store.Clear()

	if store.Loaded() {
		t.Error("Cleared store should not be loaded")
	}
	if store.Len() != 0 {
		t.Errorf("Expected 0 items after Clear, got %d", store.Len())
	}
}

// TestFeedStoreReplaceIfGeneration validates the stale-response guard
func TestFeedStoreReplaceIfGeneration(t *testing.T) {
	store := NewFeedStore()

	gen := store.Generation()
	if !store.ReplaceIfGeneration(gen, candidates("a")) {
		t.Error("Replace with current generation should apply")
	}

	// A response captured before a later Clear must be rejected
	staleGen := store.Generation()
	store.Clear()
	if store.ReplaceIfGeneration(staleGen, candidates("old")) {
		t.Error("Replace with stale generation should be rejected")
	}
	if store.Loaded() {
		t.Error("Store should stay unloaded after rejected replace")
	}
}

// TestFeedStoreSnapshotIsCopy validates that snapshots do not alias the
// internal slice
func TestFeedStoreSnapshotIsCopy(t *testing.T) {
	store := NewFeedStore()
	store.Replace(candidates("a", "b"))

	items, _ := store.Snapshot()
	items[0].ID = "mutated"

	head, _ := store.Head()
	if head.ID != "a" {
		t.Errorf("Mutating a snapshot should not affect the store, head is '%s'", head.ID)
	}
}
