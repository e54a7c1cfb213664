package scene

import "github.com/he824231-sketch/merry-christmas/internal/gesture"

// Snapshot is the scene signal bundle published to the presentation layer
// after every processed frame.
type Snapshot struct {
	State     State           `json:"state"`
	Gesture   gesture.Verdict `json:"gesture"`
	Selection string          `json:"selection,omitempty"`
	Timestamp int64           `json:"timestamp"`
}
