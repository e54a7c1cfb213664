// Package gesture classifies hand landmarks into the scene's gesture vocabulary.
package gesture

import (
	"math"

	"github.com/he824231-sketch/merry-christmas/internal/detector"
)

// Kind identifies a recognized gesture.
type Kind string

const (
	// Fist drives the chaos-to-formed transition.
	Fist Kind = "fist"
	// Pinch triggers ornament picking.
	Pinch Kind = "pinch"
	// Open drives the return to chaos.
	Open Kind = "open"
	// None is an ambiguous or absent hand; never acted on.
	None Kind = "none"
)

// Classification thresholds, in normalized frame units. A curl ratio is
// tip-to-wrist distance over knuckle-to-wrist distance, so values below
// 1.0 mean the fingertip sits closer to the wrist than its own knuckle.
const (
	fistAvgRatioMax  = 1.35
	pinchDistMax     = 0.08
	pinchPointerZone = 0.15 // looser than pinchDistMax, pointer placement only
	pinchGuardMin    = 1.2
	openAvgRatioMin  = 1.5
	openSpreadMin    = 1.6
	openSpreadAvgMin = 1.25
)

// Verdict is the classifier output for one frame: a gesture tag plus a
// normalized pointer position. X is mirrored for front-camera display.
type Verdict struct {
	Kind Kind    `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// IsPinch reports whether the verdict is a pinch.
func (v Verdict) IsPinch() bool { return v.Kind == Pinch }

// Classify maps a single hand's landmarks to a gesture verdict. It is a
// pure function: no state is retained between frames, and identical input
// always yields an identical verdict. A nil hand classifies as None with
// the pointer centered.
//
// The rules are evaluated in a fixed order with first match winning:
// fist, then pinch, then open, then none. Reordering them changes
// behavior (a tight fist also passes the pinch distance check).
func Classify(hand *detector.HandLandmarks) Verdict {
	if hand == nil {
		return Verdict{Kind: None, X: 0.5, Y: 0.5}
	}

	p := &hand.Points

	wrist := p[detector.Wrist]
	indexRatio := curlRatio(wrist, p[detector.IndexTip], p[detector.IndexMCP])
	middleRatio := curlRatio(wrist, p[detector.MiddleTip], p[detector.MiddleMCP])
	ringRatio := curlRatio(wrist, p[detector.RingTip], p[detector.RingMCP])
	pinkyRatio := curlRatio(wrist, p[detector.PinkyTip], p[detector.PinkyMCP])

	avgRatio := (indexRatio + middleRatio + ringRatio + pinkyRatio) / 4

	// Index finger participates in the pinch, so the pinch guard looks at
	// the remaining three fingers only.
	nonIndexRatio := (middleRatio + ringRatio + pinkyRatio) / 3

	pinchDist := dist2D(p[detector.ThumbTip], p[detector.IndexTip])

	kind := None
	switch {
	case avgRatio < fistAvgRatioMax:
		kind = Fist
	case pinchDist < pinchDistMax && nonIndexRatio > pinchGuardMin:
		kind = Pinch
	case avgRatio > openAvgRatioMin:
		kind = Open
	case spreadFactor(p) > openSpreadMin && avgRatio > openSpreadAvgMin:
		kind = Open
	}

	var pointer detector.Point
	if kind == Pinch || pinchDist < pinchPointerZone {
		pointer = midpoint(p[detector.ThumbTip], p[detector.IndexTip])
	} else {
		pointer = midpoint(p[detector.IndexMCP], p[detector.PinkyMCP])
	}

	return Verdict{
		Kind: kind,
		X:    1 - pointer.X,
		Y:    pointer.Y,
	}
}

// curlRatio is tip-to-wrist distance over knuckle-to-wrist distance.
func curlRatio(wrist, tip, mcp detector.Point) float64 {
	return dist2D(wrist, tip) / dist2D(wrist, mcp)
}

// spreadFactor is fingertip width over knuckle width across the palm.
// A zero palm width substitutes 1 to keep the function total.
func spreadFactor(p *[detector.NumLandmarks]detector.Point) float64 {
	palmWidth := dist2D(p[detector.IndexMCP], p[detector.PinkyMCP])
	if palmWidth == 0 {
		palmWidth = 1
	}
	return dist2D(p[detector.IndexTip], p[detector.PinkyTip]) / palmWidth
}

// dist2D is the Euclidean distance in the normalized image plane. Depth is
// deliberately ignored; the thresholds were tuned against 2D distances.
func dist2D(a, b detector.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func midpoint(a, b detector.Point) detector.Point {
	return detector.Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}
