package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"

	"github.com/he824231-sketch/merry-christmas/internal/app"
	"github.com/he824231-sketch/merry-christmas/internal/scene"
	"github.com/he824231-sketch/merry-christmas/internal/server"
	"github.com/he824231-sketch/merry-christmas/internal/store"
	"github.com/he824231-sketch/merry-christmas/internal/tray"
)

const (
	serverAddr = ":8080"
	sceneURL   = "http://localhost:8080/"
)

func main() {
	fmt.Println("Merry Tree - Hand-Tracked Holiday Scene")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".merrytree")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "merrytree.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	if err := seedOrnaments(st); err != nil {
		log.Fatalf("Failed to seed ornaments: %v", err)
	}

	// The projector mirrors the browser scene's camera so picking rays
	// land where the rendered cursor points.
	projector := &scene.PerspectiveProjector{
		Position: scene.Vec3{Y: 4, Z: 14},
		Target:   scene.Vec3{Y: 3},
		FOV:      50,
		Aspect:   16.0 / 9.0,
	}

	application := app.New(app.Config{
		Store:     st,
		Projector: projector,
	})

	if err := application.LoadOrnaments(); err != nil {
		log.Fatalf("Failed to load ornaments: %v", err)
	}

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    application.Camera(),
		Scene:     application,
		OnOrnamentsChanged: func() {
			if err := application.LoadOrnaments(); err != nil {
				log.Printf("Failed to reload ornaments: %v", err)
			}
		},
	})

	// systray.Run must own the main goroutine, so build the tray up front
	// and let the pipeline drive its scene line through snapshots.
	tr := tray.New()
	tr.OnToggle(application.SetEnabled)
	tr.OnOpenUI(func() {
		openBrowser(sceneURL)
	})

	// Push every pipeline snapshot to connected scene clients and the tray.
	application.OnSnapshot(func(snap scene.Snapshot) {
		srv.Hub().Publish(snap)
		tr.SetSceneState(string(snap.State))
	})

	if err := application.Start(); err != nil {
		log.Printf("Pipeline not started: %v", err)
	}
	defer application.Stop()

	go func() {
		fmt.Printf("Starting server on %s\n", serverAddr)
		if err := srv.ListenAndServe(serverAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	tr.Run()
}

// seedOrnaments fills an empty catalog with a default spiral of ornaments
// wound around the tree cone, so a fresh install has something to pick.
func seedOrnaments(st *store.Store) error {
	existing, err := st.Ornaments().List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	const (
		count      = 12
		treeHeight = 6.0
		baseRadius = 2.2
		turns      = 2.5
	)

	for i := 0; i < count; i++ {
		frac := float64(i) / float64(count-1)
		y := 0.5 + frac*(treeHeight-1.0)
		radius := baseRadius * (1.0 - y/treeHeight)
		angle := frac * turns * 2 * math.Pi

		ornament := &store.Ornament{
			ID:    uuid.New().String(),
			Label: fmt.Sprintf("Ornament %d", i+1),
			Position: scene.Vec3{
				X: radius * math.Cos(angle),
				Y: y,
				Z: radius * math.Sin(angle),
			},
		}
		if err := st.Ornaments().Create(ornament); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d default ornaments", count)
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.merrytree/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".merrytree", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
