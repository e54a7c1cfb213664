// Package server provides the HTTP server for the holiday tree scene daemon.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/he824231-sketch/merry-christmas/internal/scene"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// SceneHub pushes scene snapshots to connected WebSocket clients. Unlike
// a polling broadcaster it only sends when the pipeline publishes, so an
// idle scene produces no traffic.
type SceneHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewSceneHub creates an empty hub.
func NewSceneHub() *SceneHub {
	return &SceneHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *SceneHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *SceneHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends a snapshot to all connected clients. Writes are
// best-effort; a dead connection is cleaned up by its read loop.
func (h *SceneHub) Publish(snap scene.Snapshot) {
	h.mu.RLock()
	if len(h.clients) == 0 {
		h.mu.RUnlock()
		return
	}
	h.mu.RUnlock()

	msg, err := json.Marshal(map[string]any{
		"scene":     snap,
		"timestamp": time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
	h.mu.RUnlock()
}
