// Package detector provides hand landmark detection for the scene pipeline.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point represents a landmark position. X and Y are normalized to the
// camera frame ([0,1]); Z is the MediaPipe relative depth estimate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks holds the 21 landmark points for a single detected hand.
// The pipeline tracks exactly one hand; a nil *HandLandmarks means no
// hand was detected in the frame.
type HandLandmarks struct {
	Points     [NumLandmarks]Point `json:"points"`
	Handedness string              `json:"handedness"` // "Left" or "Right"
	Score      float64             `json:"score"`
}
