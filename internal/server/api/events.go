package api

import (
	"net/http"
	"strconv"

	"github.com/he824231-sketch/merry-christmas/internal/store"
)

// EventHandler serves the scene event history.
type EventHandler struct {
	store *store.Store
}

// NewEventHandler creates a new EventHandler with the given store.
func NewEventHandler(s *store.Store) *EventHandler {
	return &EventHandler{store: s}
}

type eventResponse struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	FromState  string `json:"from_state,omitempty"`
	ToState    string `json:"to_state,omitempty"`
	OrnamentID string `json:"ornament_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

// ServeHTTP handles GET /api/events. The optional limit query parameter
// caps the number of returned events; the default is 50.
func (h *EventHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	events, err := h.store.Events().ListRecent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	response := listEventsResponse{
		Events: make([]eventResponse, 0, len(events)),
	}
	for _, e := range events {
		response.Events = append(response.Events, eventResponse{
			ID:         e.ID,
			Kind:       string(e.Kind),
			FromState:  e.FromState,
			ToState:    e.ToState,
			OrnamentID: e.OrnamentID,
			CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}
