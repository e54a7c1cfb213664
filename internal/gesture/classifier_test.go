package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/he824231-sketch/merry-christmas/internal/detector"
)

func TestClassify_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want Kind
	}{
		{"fist", detector.FistLandmarks(), Fist},
		{"open palm", detector.OpenPalmLandmarks(), Open},
		{"pinch", detector.PinchLandmarks(), Pinch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(&tt.hand)
			assert.Equal(t, tt.want, v.Kind)
		})
	}
}

func TestClassify_FistBeatsPinchDistance(t *testing.T) {
	// The fist fixture folds the thumb against the curled index tip, so
	// the thumb-to-index distance is well inside the pinch threshold.
	// Fist is evaluated first and must win.
	hand := detector.FistLandmarks()

	pinchDist := dist2D(hand.Points[detector.ThumbTip], hand.Points[detector.IndexTip])
	require.Less(t, pinchDist, pinchDistMax, "fixture must be a pinch-distance candidate")

	v := Classify(&hand)
	assert.Equal(t, Fist, v.Kind)
}

func TestClassify_PinchGuardRejectsCurlingFingers(t *testing.T) {
	// Thumb and index tips touch, but middle/ring/pinky are barely past
	// their knuckles (ratio 1.1 <= 1.2). The guard must block the pinch
	// even though the whole hand is not a fist.
	var hand detector.HandLandmarks
	hand.Points[detector.Wrist] = detector.Point{X: 0.5, Y: 0.8}

	hand.Points[detector.IndexMCP] = detector.Point{X: 0.5, Y: 0.7}
	hand.Points[detector.IndexTip] = detector.Point{X: 0.5, Y: 0.5}
	hand.Points[detector.ThumbTip] = detector.Point{X: 0.5, Y: 0.52}

	for _, pair := range [][2]int{
		{detector.MiddleMCP, detector.MiddleTip},
		{detector.RingMCP, detector.RingTip},
		{detector.PinkyMCP, detector.PinkyTip},
	} {
		hand.Points[pair[0]] = detector.Point{X: 0.5, Y: 0.7}
		hand.Points[pair[1]] = detector.Point{X: 0.5, Y: 0.69}
	}

	pinchDist := dist2D(hand.Points[detector.ThumbTip], hand.Points[detector.IndexTip])
	require.Less(t, pinchDist, pinchDistMax)

	v := Classify(&hand)
	assert.NotEqual(t, Pinch, v.Kind, "guard must hold while non-index fingers are curling")
}

func TestClassify_PointerMirroredX(t *testing.T) {
	// Palm center at raw x = 0.3 must be reported at x = 0.7.
	hand := detector.OpenPalmLandmarks()
	hand.Points[detector.IndexMCP] = detector.Point{X: 0.25, Y: 0.60}
	hand.Points[detector.PinkyMCP] = detector.Point{X: 0.35, Y: 0.62}

	v := Classify(&hand)
	assert.InDelta(t, 0.7, v.X, 1e-9)
	assert.InDelta(t, 0.61, v.Y, 1e-9)
}

func TestClassify_PinchPointerAtThumbIndexMidpoint(t *testing.T) {
	hand := detector.PinchLandmarks()
	v := Classify(&hand)

	require.Equal(t, Pinch, v.Kind)
	assert.InDelta(t, 1-0.57, v.X, 1e-9)
	assert.InDelta(t, 0.61, v.Y, 1e-9)
}

func TestClassify_LoosePinchZoneMovesPointerOnly(t *testing.T) {
	// Thumb tip 0.10 from the index tip: too far to classify as a pinch,
	// close enough for the pointer to snap to the thumb-index midpoint.
	hand := detector.OpenPalmLandmarks()
	hand.Points[detector.ThumbTip] = detector.Point{X: 0.58, Y: 0.45}

	v := Classify(&hand)
	assert.Equal(t, Open, v.Kind)
	assert.InDelta(t, 1-0.58, v.X, 1e-9)
	assert.InDelta(t, 0.40, v.Y, 1e-9)
}

func TestClassify_NoHand(t *testing.T) {
	v := Classify(nil)
	assert.Equal(t, None, v.Kind)
	assert.Equal(t, 0.5, v.X)
	assert.Equal(t, 0.5, v.Y)
}

func TestClassify_Idempotent(t *testing.T) {
	hand := detector.PinchLandmarks()
	first := Classify(&hand)
	second := Classify(&hand)
	assert.Equal(t, first, second)
}
