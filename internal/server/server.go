// Package server provides the HTTP server for the holiday tree scene daemon.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/he824231-sketch/merry-christmas/internal/capture"
	"github.com/he824231-sketch/merry-christmas/internal/scene"
	"github.com/he824231-sketch/merry-christmas/internal/server/api"
	"github.com/he824231-sketch/merry-christmas/internal/store"
)

// SceneSource exposes the live scene snapshot to HTTP handlers.
type SceneSource interface {
	Snapshot() scene.Snapshot
}

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Scene     SceneSource

	// OnOrnamentsChanged runs after any ornament mutation through the API
	// so the pipeline can reload its pick candidates. May be nil.
	OnOrnamentsChanged func()
}

// Server represents the HTTP server for the scene application.
type Server struct {
	config Config
	mux    *http.ServeMux
	hub    *SceneHub
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		hub:    NewSceneHub(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// Hub returns the WebSocket hub so the pipeline can publish snapshots.
func (s *Server) Hub() *SceneHub {
	return s.hub
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Register catalog and history handlers if Store is configured
	if s.config.Store != nil {
		ornamentHandler := api.NewOrnamentHandler(s.config.Store, s.config.OnOrnamentsChanged)
		s.mux.Handle("/api/ornaments", ornamentHandler)
		s.mux.Handle("/api/ornaments/", ornamentHandler)

		s.mux.Handle("/api/events", api.NewEventHandler(s.config.Store))
	}

	if s.config.Scene != nil {
		s.mux.HandleFunc("/api/scene/state", s.handleSceneState)
	}

	// The scene WebSocket is always registered; the hub just has nothing
	// to push until the pipeline publishes snapshots.
	s.mux.Handle("/api/scene/ws", s.hub)

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleSceneState handles GET requests to /api/scene/state and returns
// the current snapshot as a one-shot poll alternative to the WebSocket.
func (s *Server) handleSceneState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := s.config.Scene.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
