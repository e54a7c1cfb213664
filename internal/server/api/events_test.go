package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/he824231-sketch/merry-christmas/internal/store"
)

func TestEventHandler_List(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)

	events := []*store.SceneEvent{
		{ID: "ev-1", Kind: store.EventTransition, FromState: "chaos", ToState: "formed"},
		{ID: "ev-2", Kind: store.EventPick, OrnamentID: "orn-1"},
	}
	for _, e := range events {
		if err := s.Events().Append(e); err != nil {
			t.Fatalf("failed to append event: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response listEventsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(response.Events))
	}

	// Newest first
	if response.Events[0].ID != "ev-2" {
		t.Errorf("expected first event 'ev-2', got %q", response.Events[0].ID)
	}
	if response.Events[0].Kind != "pick" {
		t.Errorf("expected kind 'pick', got %q", response.Events[0].Kind)
	}
}

func TestEventHandler_Limit(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)

	for _, id := range []string{"a", "b", "c"} {
		e := &store.SceneEvent{ID: id, Kind: store.EventTransition, FromState: "chaos", ToState: "formed"}
		if err := s.Events().Append(e); err != nil {
			t.Fatalf("failed to append event: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events?limit=2", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response listEventsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Events) != 2 {
		t.Errorf("expected 2 events with limit, got %d", len(response.Events))
	}
}

func TestEventHandler_InvalidLimit(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/events?limit=bogus", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestEventHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)

	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
