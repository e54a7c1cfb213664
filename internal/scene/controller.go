package scene

import (
	"time"

	"github.com/he824231-sketch/merry-christmas/internal/gesture"
)

// Debounce windows. A recognized state-switching gesture locks further
// switching for SwitchCooldown; a pinch locks it for PinchCooldown.
const (
	SwitchCooldown = 1000 * time.Millisecond
	PinchCooldown  = 500 * time.Millisecond
)

// Controller consumes the per-frame gesture stream and owns the scene
// state. It debounces gesture flicker with cooldown windows, detects
// pinch rising edges, and stashes at most one pending pinch ray for the
// picker to consume.
//
// The controller is not safe for concurrent use; the pipeline runs
// exactly one frame's worth of logic at a time.
type Controller struct {
	state          State
	nextActionable time.Time
	wasPinching    bool
	pending        *Ray
	verdict        gesture.Verdict
	projector      Projector
	onTransition   func(from, to State)
}

// NewController creates a Controller starting in StateChaos. The
// projector builds world rays from pinch pointer positions; it may be nil
// in which case pinches never produce rays.
func NewController(projector Projector) *Controller {
	return &Controller{
		state:     StateChaos,
		verdict:   gesture.Verdict{Kind: gesture.None, X: 0.5, Y: 0.5},
		projector: projector,
	}
}

// OnTransition registers a hook invoked on every state change, including
// EnterPhotoView. The hook runs synchronously inside the frame.
func (c *Controller) OnTransition(fn func(from, to State)) {
	c.onTransition = fn
}

// State returns the current scene state.
func (c *Controller) State() State {
	return c.state
}

// Verdict returns the most recent gesture verdict, for ambient effects
// such as camera drift toward the pointer.
func (c *Controller) Verdict() gesture.Verdict {
	return c.verdict
}

// Update processes one frame's verdict at time now. At most one state
// transition happens per call.
//
// A pinch rising edge emits a pending ray and starts the short pinch
// cooldown. State switching runs only outside cooldown windows and never
// on a pinching frame. An absent hand arrives here as a None verdict, so
// lost tracking always clears the pinch latch and a reacquired pinch
// counts as a fresh rising edge.
func (c *Controller) Update(v gesture.Verdict, now time.Time) {
	c.verdict = v

	isPinch := v.IsPinch()
	if isPinch && !c.wasPinching && c.projector != nil {
		ray := c.projector.ScreenRay(v.X, v.Y)
		c.pending = &ray
		c.holdUntil(now.Add(PinchCooldown))
	}
	c.wasPinching = isPinch

	if isPinch || !now.After(c.nextActionable) {
		return
	}

	switch {
	case v.Kind == gesture.Fist && c.state == StateChaos:
		c.transition(StateFormed, now)
	case v.Kind == gesture.Open && (c.state == StateFormed || c.state == StatePhotoView):
		c.transition(StateChaos, now)
	}
}

// TakeRay returns the pending pinch ray and clears it. The second result
// is false when no ray is pending. Consume-on-read keeps a stale ray from
// re-triggering a pick on a later frame.
func (c *Controller) TakeRay() (Ray, bool) {
	if c.pending == nil {
		return Ray{}, false
	}
	ray := *c.pending
	c.pending = nil
	return ray, true
}

// EnterPhotoView transitions to StatePhotoView after a successful pick.
// It is a no-op when already in photo view. Reports whether a transition
// happened.
func (c *Controller) EnterPhotoView(now time.Time) bool {
	if c.state == StatePhotoView {
		return false
	}
	c.transition(StatePhotoView, now)
	return true
}

// Reset forces the scene state without gesture input. Wiring code uses it
// for the initial value; it is not a user-intent path and clears any
// pending ray and pinch latch.
func (c *Controller) Reset(s State) {
	c.state = s
	c.pending = nil
	c.wasPinching = false
}

func (c *Controller) transition(to State, now time.Time) {
	from := c.state
	c.state = to
	c.holdUntil(now.Add(SwitchCooldown))
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}

// holdUntil raises the cooldown deadline. Deadlines never move backward.
func (c *Controller) holdUntil(t time.Time) {
	if t.After(c.nextActionable) {
		c.nextActionable = t
	}
}
