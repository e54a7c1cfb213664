// Package testdata provides synthetic video frames for pipeline tests.
package testdata

import (
	"gocv.io/x/gocv"
)

// SolidFrame returns a single-color BGR frame. The caller owns the Mat.
func SolidFrame(width, height int, b, g, r float64) *gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(b, g, r, 0), height, width, gocv.MatTypeCV8UC3)
	return &mat
}

// StillSequence returns n identical dark frames, useful for exercising
// the idle path of the activity gate.
func StillSequence(n int) []*gocv.Mat {
	frames := make([]*gocv.Mat, n)
	for i := range frames {
		frames[i] = SolidFrame(640, 480, 16, 16, 16)
	}
	return frames
}

// MotionSequence returns frames alternating between dark and bright,
// so every frame after the first registers as activity.
func MotionSequence(n int) []*gocv.Mat {
	frames := make([]*gocv.Mat, n)
	for i := range frames {
		if i%2 == 0 {
			frames[i] = SolidFrame(640, 480, 16, 16, 16)
		} else {
			frames[i] = SolidFrame(640, 480, 220, 220, 220)
		}
	}
	return frames
}

// CloseFrames releases a frame slice.
func CloseFrames(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
