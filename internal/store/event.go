package store

import (
	"database/sql"
	"time"
)

// EventKind distinguishes scene event records.
type EventKind string

const (
	// EventTransition records a state change.
	EventTransition EventKind = "transition"
	// EventPick records a successful ornament pick.
	EventPick EventKind = "pick"
)

// SceneEvent is one row of the scene history: either a state transition
// or an ornament pick.
type SceneEvent struct {
	ID         string
	Kind       EventKind
	FromState  string
	ToState    string
	OrnamentID string
	CreatedAt  time.Time
}

// EventRepository provides append and query operations for scene events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Append inserts a new scene event.
func (r *EventRepository) Append(e *SceneEvent) error {
	e.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO scene_events (id, kind, from_state, to_state, ornament_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Kind), e.FromState, e.ToState, e.OrnamentID, e.CreatedAt,
	)
	return err
}

// ListRecent retrieves the most recent events, newest first.
func (r *EventRepository) ListRecent(limit int) ([]*SceneEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, kind, from_state, to_state, ornament_id, created_at
		 FROM scene_events ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*SceneEvent
	for rows.Next() {
		e := &SceneEvent{}
		var kind string

		err := rows.Scan(&e.ID, &kind, &e.FromState, &e.ToState, &e.OrnamentID, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		e.Kind = EventKind(kind)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
