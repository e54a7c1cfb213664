package detector

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// MediaPipeDetector implements Detector using a Python MediaPipe subprocess.
// Frames are sent as length-prefixed JPEG bytes; responses come back as
// JSON lines. The subprocess is started lazily and shut down after 30s idle.
type MediaPipeDetector struct {
	config    Config
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	mu        sync.Mutex
	started   bool
	lastUsed  time.Time
	idleTimer *time.Timer
}

// NewMediaPipeDetector creates a new MediaPipe detector.
// Returns an error if the service script cannot be located, so callers
// can fall back to running without hand tracking.
func NewMediaPipeDetector(config Config) (*MediaPipeDetector, error) {
	if findServiceScript() == "" {
		return nil, fmt.Errorf("hand_service.py not found")
	}

	return &MediaPipeDetector{
		config: config,
	}, nil
}

// Detect analyzes a frame and returns the most confident detected hand,
// or nil when no hand is present. Only one hand is tracked; additional
// detections from the model are discarded.
func (d *MediaPipeDetector) Detect(frame *gocv.Mat) (*HandLandmarks, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensureStarted(); err != nil {
		return nil, err
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := buf.GetBytes()

	// Write length (4 bytes big-endian) + data
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := d.stdin.Write(length); err != nil {
		return nil, fmt.Errorf("write length: %w", err)
	}
	if _, err := d.stdin.Write(data); err != nil {
		return nil, fmt.Errorf("write data: %w", err)
	}

	line, err := d.stdout.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response struct {
		Hands []jsonHand `json:"hands"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	d.lastUsed = time.Now()
	d.resetIdleTimer()

	if len(response.Hands) == 0 {
		return nil, nil
	}

	best := response.Hands[0]
	for _, h := range response.Hands[1:] {
		if h.Score > best.Score {
			best = h
		}
	}
	if best.Score < d.config.MinConfidence {
		return nil, nil
	}

	hand := best.toHandLandmarks()
	return &hand, nil
}

// Close shuts down the Python process.
func (d *MediaPipeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shutdown()
}

func (d *MediaPipeDetector) ensureStarted() error {
	if d.started {
		return nil
	}

	scriptPath := findServiceScript()
	if scriptPath == "" {
		return fmt.Errorf("hand_service.py not found")
	}

	// Use virtual environment Python if available
	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	d.cmd = exec.Command(pythonPath, scriptPath)

	stdin, err := d.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := d.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Capture stderr for debugging
	d.cmd.Stderr = os.Stderr

	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("start hand service: %w", err)
	}

	d.stdin = stdin
	d.stdout = bufio.NewReader(stdout)
	d.started = true
	d.lastUsed = time.Now()

	return nil
}

func (d *MediaPipeDetector) shutdown() error {
	if !d.started {
		return nil
	}

	if d.idleTimer != nil {
		d.idleTimer.Stop()
		d.idleTimer = nil
	}

	if d.stdin != nil {
		d.stdin.Close()
	}

	err := d.cmd.Wait()
	d.started = false
	d.cmd = nil
	d.stdin = nil
	d.stdout = nil

	return err
}

func (d *MediaPipeDetector) resetIdleTimer() {
	if d.idleTimer != nil {
		d.idleTimer.Stop()
	}
	d.idleTimer = time.AfterFunc(30*time.Second, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.shutdown()
	})
}

func findServiceScript() string {
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/hand_service.py",
		"../scripts/hand_service.py",
		filepath.Join(execDir, "scripts/hand_service.py"),
		filepath.Join(os.Getenv("HOME"), ".merrytree/scripts/hand_service.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".merrytree/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonHand represents the JSON structure from the Python service.
type jsonHand struct {
	Points     []jsonPoint `json:"points"`
	Handedness string      `json:"handedness"`
	Score      float64     `json:"score"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (h jsonHand) toHandLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: h.Handedness,
		Score:      h.Score,
	}

	for i := 0; i < NumLandmarks && i < len(h.Points); i++ {
		lm.Points[i] = Point{
			X: h.Points[i].X,
			Y: h.Points[i].Y,
			Z: h.Points[i].Z,
		}
	}

	return lm
}
