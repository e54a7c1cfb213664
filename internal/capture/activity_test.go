package capture

import (
	"testing"

	"github.com/he824231-sketch/merry-christmas/testdata"
)

func TestActivityGate_FirstFrameIsBaseline(t *testing.T) {
	gate := NewActivityGate(1.0)
	defer gate.Close()

	frame := testdata.SolidFrame(640, 480, 16, 16, 16)
	defer frame.Close()

	detected, percent := gate.Detect(frame)
	if detected {
		t.Error("first frame must not count as activity")
	}
	if percent != 0 {
		t.Errorf("percent = %f, want 0", percent)
	}
}

func TestActivityGate_DetectsChange(t *testing.T) {
	gate := NewActivityGate(1.0)
	defer gate.Close()

	dark := testdata.SolidFrame(640, 480, 16, 16, 16)
	defer dark.Close()
	bright := testdata.SolidFrame(640, 480, 220, 220, 220)
	defer bright.Close()

	gate.Detect(dark)

	detected, percent := gate.Detect(bright)
	if !detected {
		t.Error("expected activity on dark-to-bright change")
	}
	if percent <= 1.0 {
		t.Errorf("percent = %f, want > 1.0", percent)
	}
}

func TestActivityGate_StillSceneIsQuiet(t *testing.T) {
	gate := NewActivityGate(1.0)
	defer gate.Close()

	frames := testdata.StillSequence(4)
	defer testdata.CloseFrames(frames)

	for i, frame := range frames {
		detected, _ := gate.Detect(frame)
		if detected {
			t.Errorf("frame %d: unexpected activity in still scene", i)
		}
	}
}

func TestActivityGate_Reset(t *testing.T) {
	gate := NewActivityGate(1.0)
	defer gate.Close()

	dark := testdata.SolidFrame(640, 480, 16, 16, 16)
	defer dark.Close()
	bright := testdata.SolidFrame(640, 480, 220, 220, 220)
	defer bright.Close()

	gate.Detect(dark)
	gate.Reset()

	// After reset the bright frame is a new baseline, not a change.
	detected, _ := gate.Detect(bright)
	if detected {
		t.Error("frame after Reset must establish a new baseline")
	}
}

func TestActivityGate_NilFrame(t *testing.T) {
	gate := NewActivityGate(1.0)
	defer gate.Close()

	detected, percent := gate.Detect(nil)
	if detected || percent != 0 {
		t.Errorf("Detect(nil) = (%v, %f), want (false, 0)", detected, percent)
	}
}
