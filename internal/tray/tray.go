// Package tray provides a system tray interface for the holiday tree scene daemon.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle func(enabled bool)
	onOpenUI func()
	onQuit   func()
	enabled  bool
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuScene  *systray.MenuItem
}

// New creates a new Tray instance with tracking enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback function to be called when hand tracking is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnOpenUI sets the callback function to be called when the scene menu item is clicked.
func (t *Tray) OnOpenUI(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onOpenUI = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Merry Tree")
	systray.SetTooltip("Hand-tracked holiday tree")

	t.menuToggle = systray.AddMenuItem("● Tracking", "Toggle hand tracking")
	systray.AddSeparator()

	t.menuScene = systray.AddMenuItem("Scene: chaos", "Current scene state")
	t.menuScene.Disable()
	systray.AddSeparator()

	menuOpen := systray.AddMenuItem("Open Scene...", "Open the scene in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Merry Tree")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuOpen.ClickedCh:
				t.handleOpenUI()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
	// Cleanup resources if needed
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Tracking")
	} else {
		t.menuToggle.SetTitle("○ Paused")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleOpenUI handles the scene menu item click.
func (t *Tray) handleOpenUI() {
	t.mu.RLock()
	callback := t.onOpenUI
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetSceneState updates the scene state line in the menu.
func (t *Tray) SetSceneState(state string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuScene != nil {
		if state == "" {
			t.menuScene.SetTitle("Scene: chaos")
		} else {
			t.menuScene.SetTitle("Scene: " + state)
		}
	}
}

// IsEnabled returns whether hand tracking is currently enabled.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
