package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/he824231-sketch/merry-christmas/internal/detector"
	"github.com/he824231-sketch/merry-christmas/internal/scene"
	"github.com/he824231-sketch/merry-christmas/internal/store"
)

// fixedProjector returns the same ray for every pinch, letting tests aim
// it at (or away from) the candidate ornaments.
type fixedProjector struct {
	ray scene.Ray
}

func (p fixedProjector) ScreenRay(x, y float64) scene.Ray { return p.ray }

func atOrigin() fixedProjector {
	return fixedProjector{ray: scene.Ray{Origin: scene.Vec3{Z: 10}, Dir: scene.Vec3{Z: -1}}}
}

func newTestApp(t *testing.T, s *store.Store) *App {
	t.Helper()

	a := New(Config{Store: s, Projector: atOrigin()})
	a.SetDetector(detector.NewMockDetector())
	return a
}

func TestApp_FistFormsTree(t *testing.T) {
	a := newTestApp(t, nil)

	var snapshots []scene.Snapshot
	a.OnSnapshot(func(s scene.Snapshot) { snapshots = append(snapshots, s) })

	fist := detector.FistLandmarks()
	now := time.Unix(100, 0)

	a.processFrame(&fist, now)

	if got := a.Controller().State(); got != scene.StateFormed {
		t.Fatalf("state = %s, want %s", got, scene.StateFormed)
	}
	if len(snapshots) != 1 {
		t.Fatalf("len(snapshots) = %d, want 1", len(snapshots))
	}
	if snapshots[0].State != scene.StateFormed {
		t.Errorf("snapshot state = %s, want %s", snapshots[0].State, scene.StateFormed)
	}
	if snapshots[0].Gesture.Kind != "fist" {
		t.Errorf("snapshot gesture = %s, want fist", snapshots[0].Gesture.Kind)
	}
}

func TestApp_PinchPicksOrnament(t *testing.T) {
	a := newTestApp(t, nil)
	a.SetCandidates([]scene.Candidate{
		{ID: "star", Position: scene.Vec3{}},      // on the ray
		{ID: "bell", Position: scene.Vec3{X: 30}}, // far off
	})

	pinch := detector.PinchLandmarks()
	now := time.Unix(100, 0)

	a.processFrame(&pinch, now)

	if got := a.Controller().State(); got != scene.StatePhotoView {
		t.Fatalf("state = %s, want %s", got, scene.StatePhotoView)
	}
	if sel := a.Snapshot().Selection; sel != "star" {
		t.Errorf("selection = %q, want %q", sel, "star")
	}
}

func TestApp_OpenClearsSelection(t *testing.T) {
	a := newTestApp(t, nil)
	a.SetCandidates([]scene.Candidate{{ID: "star", Position: scene.Vec3{}}})

	pinch := detector.PinchLandmarks()
	open := detector.OpenPalmLandmarks()
	now := time.Unix(100, 0)

	a.processFrame(&pinch, now)
	if a.Snapshot().Selection != "star" {
		t.Fatal("expected a selection after the pick")
	}

	// Open exits photo view once the cooldown has passed.
	a.processFrame(&open, now.Add(1500*time.Millisecond))

	snap := a.Snapshot()
	if snap.State != scene.StateChaos {
		t.Errorf("state = %s, want %s", snap.State, scene.StateChaos)
	}
	if snap.Selection != "" {
		t.Errorf("selection = %q, want cleared", snap.Selection)
	}
}

func TestApp_PickerMissKeepsState(t *testing.T) {
	a := newTestApp(t, nil)
	a.SetCandidates([]scene.Candidate{{ID: "bell", Position: scene.Vec3{X: 30}}})

	pinch := detector.PinchLandmarks()
	a.processFrame(&pinch, time.Unix(100, 0))

	snap := a.Snapshot()
	if snap.State != scene.StateChaos {
		t.Errorf("state = %s, want %s after a miss", snap.State, scene.StateChaos)
	}
	if snap.Selection != "" {
		t.Errorf("selection = %q, want empty after a miss", snap.Selection)
	}
}

func TestApp_DetectionSequenceAdvances(t *testing.T) {
	a := newTestApp(t, nil)

	_, seq0 := a.pollDetection()

	fist := detector.FistLandmarks()
	a.publishDetection(&fist)

	hand, seq1 := a.pollDetection()
	if hand == nil {
		t.Fatal("expected published hand")
	}
	if seq1 != seq0+1 {
		t.Errorf("seq = %d, want %d", seq1, seq0+1)
	}

	// Absence also counts as a new frame.
	a.publishDetection(nil)
	hand, seq2 := a.pollDetection()
	if hand != nil {
		t.Error("expected nil hand after absence")
	}
	if seq2 != seq1+1 {
		t.Errorf("seq = %d, want %d", seq2, seq1+1)
	}
}

func TestApp_RecordsSceneEvents(t *testing.T) {
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	a := newTestApp(t, s)
	a.SetCandidates([]scene.Candidate{{ID: "star", Position: scene.Vec3{}}})

	fist := detector.FistLandmarks()
	open := detector.OpenPalmLandmarks()
	pinch := detector.PinchLandmarks()
	now := time.Unix(100, 0)

	a.processFrame(&fist, now)                            // chaos -> formed
	a.processFrame(&open, now.Add(1500*time.Millisecond)) // formed -> chaos
	a.processFrame(&pinch, now.Add(3*time.Second))        // pick + photo view

	events, err := s.Events().ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}

	var transitions, picks int
	for _, e := range events {
		switch e.Kind {
		case store.EventTransition:
			transitions++
		case store.EventPick:
			picks++
		}
	}

	if transitions != 3 {
		t.Errorf("transitions = %d, want 3", transitions)
	}
	if picks != 1 {
		t.Errorf("picks = %d, want 1", picks)
	}
}

func TestApp_LoadOrnaments(t *testing.T) {
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	err = s.Ornaments().Create(&store.Ornament{
		ID:       "orn-1",
		Label:    "Snowman",
		Position: scene.Vec3{Y: 2},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a := newTestApp(t, s)
	if err := a.LoadOrnaments(); err != nil {
		t.Fatalf("LoadOrnaments() error = %v", err)
	}

	a.mu.RLock()
	n := len(a.candidates)
	a.mu.RUnlock()
	if n != 1 {
		t.Errorf("len(candidates) = %d, want 1", n)
	}
}
