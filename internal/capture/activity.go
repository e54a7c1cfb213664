package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// ActivityGate detects whether anything is moving in front of the camera
// using frame differencing with Gaussian blur for noise reduction. The
// pipeline uses it to drop to an idle frame rate when the scene is empty.
type ActivityGate struct {
	threshold   float64
	prevGray    gocv.Mat
	initialized bool
	mu          sync.Mutex
}

const (
	// GaussianBlurSize is the kernel size for Gaussian blur (21x21)
	GaussianBlurSize = 21
	// DiffThreshold is the binary threshold for difference detection
	DiffThreshold = 25
)

// NewActivityGate creates a new ActivityGate with the given threshold.
// The threshold is the percentage of pixels that must change between
// consecutive frames, e.g. 1.0 means 1% of pixels.
func NewActivityGate(threshold float64) *ActivityGate {
	return &ActivityGate{
		threshold: threshold,
		prevGray:  gocv.NewMat(),
	}
}

// Detect compares a frame against the previous one. Returns whether
// activity was detected and the percentage of pixels that changed.
// The first frame establishes the baseline and never counts as activity.
func (g *ActivityGate) Detect(frame *gocv.Mat) (bool, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if frame == nil || frame.Empty() {
		return false, 0
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: GaussianBlurSize, Y: GaussianBlurSize}, 0, 0, gocv.BorderDefault)

	if !g.initialized {
		blurred.CopyTo(&g.prevGray)
		g.initialized = true
		return false, 0
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, g.prevGray, &diff)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(diff, &thresh, DiffThreshold, 255, gocv.ThresholdBinary)

	nonZero := gocv.CountNonZero(thresh)
	totalPixels := thresh.Rows() * thresh.Cols()

	changePercent := float64(nonZero) / float64(totalPixels) * 100.0

	blurred.CopyTo(&g.prevGray)

	return changePercent > g.threshold, changePercent
}

// Reset clears the gate state so the next frame becomes a new baseline.
func (g *ActivityGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.prevGray.Empty() {
		g.prevGray.Close()
		g.prevGray = gocv.NewMat()
	}
	g.initialized = false
}

// Close releases resources used by the gate.
func (g *ActivityGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.prevGray.Empty() {
		g.prevGray.Close()
		g.prevGray = gocv.NewMat()
	}
	g.initialized = false
}

// SetThreshold sets the activity threshold as a percentage of changed
// pixels. Values less than or equal to 0 are ignored.
func (g *ActivityGate) SetThreshold(threshold float64) {
	if threshold <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.threshold = threshold
}
