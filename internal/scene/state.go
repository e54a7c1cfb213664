// Package scene turns per-frame gesture verdicts into holiday-tree scene
// state: debounced chaos/formed/photo transitions and pinch-ray ornament
// picking.
package scene

// State is the scene's application state. There is exactly one current
// value, owned by the Controller.
type State string

const (
	// StateChaos scatters the tree into its particle cloud.
	StateChaos State = "chaos"
	// StateFormed assembles the particles into the tree shape.
	StateFormed State = "formed"
	// StatePhotoView pins a picked ornament front and center.
	StatePhotoView State = "photo_view"
)
