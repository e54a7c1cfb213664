package app

import (
	"log"
	"time"

	"github.com/he824231-sketch/merry-christmas/internal/detector"
	"github.com/he824231-sketch/merry-christmas/internal/gesture"
	"github.com/he824231-sketch/merry-christmas/internal/scene"
)

// runLandmarkStage is the asynchronous video stage: it reads camera
// frames, manages the idle/active capture rate, runs hand detection, and
// publishes the latest completed result with a sequence number. It never
// blocks the scene stage; a slow inference just means the sequence number
// advances less often.
func (a *App) runLandmarkStage(stopCh <-chan struct{}) {
	activeMode := false
	lastActivity := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			camera := a.Camera()
			frame, err := camera.ReadFrame()
			if err != nil {
				// Camera unavailable: report absence rather than
				// crashing the scene.
				a.publishDetection(nil)
				continue
			}

			moving, _ := a.activity.Detect(frame)

			if moving {
				lastActivity = time.Now()

				if !activeMode {
					activeMode = true
					camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastActivity) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode {
				frame.Close()
				a.publishDetection(nil)
				continue
			}

			hand, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hand: %v", err)
				a.publishDetection(nil)
				continue
			}

			a.publishDetection(hand)
		}
	}
}

// publishDetection stores the latest detection result. Every call marks
// a new underlying video frame, so the sequence number always advances.
// That includes "no hand" results, which the scene stage needs to clear
// a stale pinch.
func (a *App) publishDetection(hand *detector.HandLandmarks) {
	a.detMu.Lock()
	a.latestHand = hand
	a.latestSeq++
	a.detMu.Unlock()
}

// pollDetection returns the latest detection and its sequence number.
func (a *App) pollDetection() (*detector.HandLandmarks, uint64) {
	a.detMu.Lock()
	defer a.detMu.Unlock()
	return a.latestHand, a.latestSeq
}

// runSceneStage is the frame-driven stage: once per tick it polls the
// landmark stage and, if a new video frame has completed, runs the
// classifier, the state controller, and the picker in strict sequence.
// Ticks with no new frame are skipped entirely so a repeated frame can
// never double-trigger a transition.
func (a *App) runSceneStage(stopCh <-chan struct{}) {
	ticker := time.NewTicker(time.Second / time.Duration(ActiveFPS))
	defer ticker.Stop()

	var lastSeq uint64

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			hand, seq := a.pollDetection()
			if seq == lastSeq {
				continue
			}
			lastSeq = seq

			a.processFrame(hand, time.Now())
		}
	}
}

// processFrame runs one frame of scene logic and publishes a snapshot.
func (a *App) processFrame(hand *detector.HandLandmarks, now time.Time) {
	verdict := gesture.Classify(hand)
	a.controller.Update(verdict, now)

	// The pending ray is consumed whether or not the picker runs, so a
	// pinch thrown while already in photo view cannot linger and fire on
	// a later frame.
	if ray, ok := a.controller.TakeRay(); ok && a.controller.State() != scene.StatePhotoView {
		a.mu.RLock()
		candidates := a.candidates
		a.mu.RUnlock()

		if id, hit := scene.Pick(ray, candidates); hit {
			a.mu.Lock()
			a.selection = id
			a.mu.Unlock()

			a.controller.EnterPhotoView(now)
			a.recordPick(id)
			log.Printf("Ornament picked: %s", id)
		}
	}

	a.mu.RLock()
	publish := a.onSnapshot
	a.mu.RUnlock()

	if publish != nil {
		publish(a.Snapshot())
	}
}
