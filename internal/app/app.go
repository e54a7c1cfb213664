// Package app wires the capture, detection, classification, and scene
// stages into the per-frame pipeline.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/he824231-sketch/merry-christmas/internal/capture"
	"github.com/he824231-sketch/merry-christmas/internal/detector"
	"github.com/he824231-sketch/merry-christmas/internal/scene"
	"github.com/he824231-sketch/merry-christmas/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the capture rate when nothing moves in front of the camera.
	IdleFPS = 5
	// ActiveFPS is the capture rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the quiet time before dropping back to idle capture.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store          *store.Store
	CameraID       int
	ActivityThresh float64
	Projector      scene.Projector
}

// App owns the detection pipeline: an asynchronous landmark stage feeding
// a frame-driven scene stage that runs classifier, controller, and picker
// in strict sequence.
type App struct {
	config     Config
	camera     capture.Camera
	activity   *capture.ActivityGate
	detector   detector.Detector
	controller *scene.Controller

	enabled    bool
	selection  string
	candidates []scene.Candidate
	onSnapshot func(scene.Snapshot)
	mu         sync.RWMutex
	stopCh     chan struct{}

	// Latest completed detection, published by the landmark stage and
	// polled once per scene frame. The sequence number lets the scene
	// stage skip ticks where no new video frame has arrived.
	detMu      sync.Mutex
	latestHand *detector.HandLandmarks
	latestSeq  uint64
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	activityThreshold := config.ActivityThresh
	if activityThreshold <= 0 {
		activityThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		activity:   capture.NewActivityGate(activityThreshold),
		controller: scene.NewController(config.Projector),
		enabled:    true,
	}

	a.controller.OnTransition(a.handleTransition)

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables gesture tracking.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture tracking is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the camera, for tests and recorded playback.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnSnapshot registers the hook invoked with a fresh scene snapshot
// after every processed frame.
func (a *App) OnSnapshot(fn func(scene.Snapshot)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onSnapshot = fn
}

// LoadOrnaments refreshes the picker candidate list from the catalog.
func (a *App) LoadOrnaments() error {
	if a.config.Store == nil {
		return nil
	}

	candidates, err := a.config.Store.Ornaments().Candidates()
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.candidates = candidates
	a.mu.Unlock()

	log.Printf("Loaded %d ornaments from database", len(candidates))
	return nil
}

// SetCandidates replaces the picker candidate list directly.
func (a *App) SetCandidates(candidates []scene.Candidate) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.candidates = candidates
}

// Snapshot returns the current scene signals for the presentation layer.
func (a *App) Snapshot() scene.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return scene.Snapshot{
		State:     a.controller.State(),
		Gesture:   a.controller.Verdict(),
		Selection: a.selection,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Controller returns the scene controller.
func (a *App) Controller() *scene.Controller {
	return a.controller
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runLandmarkStage(a.stopCh)
	go a.runSceneStage(a.stopCh)

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.activity.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Detection pipeline stopped")
}

// handleTransition runs synchronously inside the scene stage whenever
// the controller changes state.
func (a *App) handleTransition(from, to scene.State) {
	log.Printf("Scene transition: %s -> %s", from, to)

	if to == scene.StateChaos {
		// Leaving photo view releases the pinned ornament.
		a.mu.Lock()
		a.selection = ""
		a.mu.Unlock()
	}

	if a.config.Store == nil {
		return
	}
	err := a.config.Store.Events().Append(&store.SceneEvent{
		ID:        uuid.New().String(),
		Kind:      store.EventTransition,
		FromState: string(from),
		ToState:   string(to),
	})
	if err != nil {
		log.Printf("Failed to record transition: %v", err)
	}
}

// recordPick appends a pick event to the scene history.
func (a *App) recordPick(ornamentID string) {
	if a.config.Store == nil {
		return
	}
	err := a.config.Store.Events().Append(&store.SceneEvent{
		ID:         uuid.New().String(),
		Kind:       store.EventPick,
		OrnamentID: ornamentID,
	})
	if err != nil {
		log.Printf("Failed to record pick: %v", err)
	}
}
