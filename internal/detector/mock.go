package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection result per frame.
type MockDetector struct {
	hand *HandLandmarks
	err  error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHand sets the hand returned by Detect. Pass nil to simulate
// lost tracking.
func (m *MockDetector) SetHand(hand *HandLandmarks) {
	m.hand = hand
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hand or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hand, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// FistLandmarks returns a preset HandLandmarks representing a closed fist.
// All four fingertips are folded back toward the wrist, well inside their
// base knuckles. The thumb tip rests against the curled index tip, so the
// pose also doubles as a pinch-distance false positive for priority tests.
func FistLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point{X: 0.50, Y: 0.85}

	// Thumb folded across the palm
	landmarks.Points[ThumbCMC] = Point{X: 0.55, Y: 0.82}
	landmarks.Points[ThumbMCP] = Point{X: 0.57, Y: 0.78}
	landmarks.Points[ThumbIP] = Point{X: 0.56, Y: 0.75}
	landmarks.Points[ThumbTip] = Point{X: 0.54, Y: 0.72}

	// Index finger curled, tip pulled back down toward the wrist
	landmarks.Points[IndexMCP] = Point{X: 0.55, Y: 0.70}
	landmarks.Points[IndexPIP] = Point{X: 0.56, Y: 0.68}
	landmarks.Points[IndexDIP] = Point{X: 0.54, Y: 0.71}
	landmarks.Points[IndexTip] = Point{X: 0.52, Y: 0.74}

	// Middle finger curled
	landmarks.Points[MiddleMCP] = Point{X: 0.50, Y: 0.69}
	landmarks.Points[MiddlePIP] = Point{X: 0.50, Y: 0.66}
	landmarks.Points[MiddleDIP] = Point{X: 0.49, Y: 0.70}
	landmarks.Points[MiddleTip] = Point{X: 0.49, Y: 0.73}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point{X: 0.45, Y: 0.70}
	landmarks.Points[RingPIP] = Point{X: 0.45, Y: 0.67}
	landmarks.Points[RingDIP] = Point{X: 0.455, Y: 0.71}
	landmarks.Points[RingTip] = Point{X: 0.46, Y: 0.74}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point{X: 0.41, Y: 0.72}
	landmarks.Points[PinkyPIP] = Point{X: 0.41, Y: 0.70}
	landmarks.Points[PinkyDIP] = Point{X: 0.42, Y: 0.73}
	landmarks.Points[PinkyTip] = Point{X: 0.43, Y: 0.76}

	return landmarks
}

// OpenPalmLandmarks returns a preset HandLandmarks representing an open palm.
// All fingers are extended outward, fingertips roughly three times as far
// from the wrist as their base knuckles.
func OpenPalmLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point{X: 0.50, Y: 0.80}

	// Thumb extended to the side
	landmarks.Points[ThumbCMC] = Point{X: 0.55, Y: 0.75}
	landmarks.Points[ThumbMCP] = Point{X: 0.62, Y: 0.70}
	landmarks.Points[ThumbIP] = Point{X: 0.68, Y: 0.65}
	landmarks.Points[ThumbTip] = Point{X: 0.73, Y: 0.60}

	// Index finger extended upward
	landmarks.Points[IndexMCP] = Point{X: 0.55, Y: 0.68}
	landmarks.Points[IndexPIP] = Point{X: 0.57, Y: 0.55}
	landmarks.Points[IndexDIP] = Point{X: 0.58, Y: 0.45}
	landmarks.Points[IndexTip] = Point{X: 0.58, Y: 0.35}

	// Middle finger extended upward
	landmarks.Points[MiddleMCP] = Point{X: 0.50, Y: 0.66}
	landmarks.Points[MiddlePIP] = Point{X: 0.50, Y: 0.52}
	landmarks.Points[MiddleDIP] = Point{X: 0.50, Y: 0.40}
	landmarks.Points[MiddleTip] = Point{X: 0.50, Y: 0.28}

	// Ring finger extended upward
	landmarks.Points[RingMCP] = Point{X: 0.45, Y: 0.68}
	landmarks.Points[RingPIP] = Point{X: 0.43, Y: 0.55}
	landmarks.Points[RingDIP] = Point{X: 0.42, Y: 0.45}
	landmarks.Points[RingTip] = Point{X: 0.42, Y: 0.35}

	// Pinky finger extended upward
	landmarks.Points[PinkyMCP] = Point{X: 0.40, Y: 0.70}
	landmarks.Points[PinkyPIP] = Point{X: 0.37, Y: 0.60}
	landmarks.Points[PinkyDIP] = Point{X: 0.35, Y: 0.50}
	landmarks.Points[PinkyTip] = Point{X: 0.34, Y: 0.42}

	return landmarks
}

// PinchLandmarks returns a preset HandLandmarks representing a pinch.
// The thumb tip and index tip nearly touch while the middle, ring, and
// pinky fingers stay extended.
func PinchLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point{X: 0.50, Y: 0.88}

	// Thumb reaching up toward the index tip
	landmarks.Points[ThumbCMC] = Point{X: 0.54, Y: 0.84}
	landmarks.Points[ThumbMCP] = Point{X: 0.56, Y: 0.78}
	landmarks.Points[ThumbIP] = Point{X: 0.56, Y: 0.70}
	landmarks.Points[ThumbTip] = Point{X: 0.56, Y: 0.60}

	// Index finger arched down to meet the thumb
	landmarks.Points[IndexMCP] = Point{X: 0.55, Y: 0.72}
	landmarks.Points[IndexPIP] = Point{X: 0.57, Y: 0.67}
	landmarks.Points[IndexDIP] = Point{X: 0.58, Y: 0.64}
	landmarks.Points[IndexTip] = Point{X: 0.58, Y: 0.62}

	// Middle finger extended
	landmarks.Points[MiddleMCP] = Point{X: 0.50, Y: 0.70}
	landmarks.Points[MiddlePIP] = Point{X: 0.50, Y: 0.63}
	landmarks.Points[MiddleDIP] = Point{X: 0.49, Y: 0.56}
	landmarks.Points[MiddleTip] = Point{X: 0.49, Y: 0.50}

	// Ring finger extended
	landmarks.Points[RingMCP] = Point{X: 0.455, Y: 0.715}
	landmarks.Points[RingPIP] = Point{X: 0.45, Y: 0.65}
	landmarks.Points[RingDIP] = Point{X: 0.445, Y: 0.58}
	landmarks.Points[RingTip] = Point{X: 0.44, Y: 0.52}

	// Pinky finger extended
	landmarks.Points[PinkyMCP] = Point{X: 0.41, Y: 0.73}
	landmarks.Points[PinkyPIP] = Point{X: 0.405, Y: 0.67}
	landmarks.Points[PinkyDIP] = Point{X: 0.40, Y: 0.61}
	landmarks.Points[PinkyTip] = Point{X: 0.40, Y: 0.56}

	return landmarks
}
