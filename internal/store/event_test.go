package store

import (
	"fmt"
	"testing"
)

func TestEventRepository_AppendAndList(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	err := repo.Append(&SceneEvent{
		ID:        "ev-1",
		Kind:      EventTransition,
		FromState: "chaos",
		ToState:   "formed",
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	err = repo.Append(&SceneEvent{
		ID:         "ev-2",
		Kind:       EventPick,
		OrnamentID: "orn-7",
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	events, err := repo.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}

	// Newest first
	if events[0].ID != "ev-2" || events[0].Kind != EventPick {
		t.Errorf("events[0] = %+v, want ev-2 pick", events[0])
	}
	if events[1].FromState != "chaos" || events[1].ToState != "formed" {
		t.Errorf("events[1] = %+v, want chaos->formed", events[1])
	}
}

func TestEventRepository_ListRecentLimit(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	for i := 0; i < 5; i++ {
		err := repo.Append(&SceneEvent{
			ID:   fmt.Sprintf("ev-%d", i),
			Kind: EventTransition,
		})
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	events, err := repo.ListRecent(3)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(events) != 3 {
		t.Errorf("len(events) = %d, want 3", len(events))
	}

	// Non-positive limit falls back to the default
	events, err = repo.ListRecent(0)
	if err != nil {
		t.Fatalf("ListRecent(0) error = %v", err)
	}
	if len(events) != 5 {
		t.Errorf("len(events) = %d, want 5", len(events))
	}
}

func TestEventRepository_RejectsUnknownKind(t *testing.T) {
	s := newTestStore(t)

	err := s.Events().Append(&SceneEvent{ID: "bad", Kind: "jiggle"})
	if err == nil {
		t.Fatal("expected CHECK constraint violation for unknown event kind")
	}
}
