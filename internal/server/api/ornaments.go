// Package api provides the HTTP API handlers for the scene daemon.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/he824231-sketch/merry-christmas/internal/scene"
	"github.com/he824231-sketch/merry-christmas/internal/store"
)

// OrnamentHandler handles HTTP requests for ornament resources.
type OrnamentHandler struct {
	store    *store.Store
	onChange func()
}

// NewOrnamentHandler creates a new OrnamentHandler with the given store.
// The onChange hook, if non-nil, runs after every successful mutation so
// the pipeline can refresh its candidate list; it may be nil.
func NewOrnamentHandler(s *store.Store, onChange func()) *OrnamentHandler {
	return &OrnamentHandler{store: s, onChange: onChange}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *OrnamentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/ornaments or /api/ornaments/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/ornaments")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type positionBody struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type createOrnamentRequest struct {
	Label     string        `json:"label"`
	ImagePath string        `json:"image_path"`
	Position  *positionBody `json:"position"`
}

type updateOrnamentRequest struct {
	Label     string        `json:"label"`
	ImagePath string        `json:"image_path"`
	Position  *positionBody `json:"position"`
}

type ornamentResponse struct {
	ID        string       `json:"id"`
	Label     string       `json:"label"`
	ImagePath string       `json:"image_path"`
	Position  positionBody `json:"position"`
	CreatedAt string       `json:"created_at"`
}

type listOrnamentsResponse struct {
	Ornaments []ornamentResponse `json:"ornaments"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toResponse(o *store.Ornament) ornamentResponse {
	return ornamentResponse{
		ID:        o.ID,
		Label:     o.Label,
		ImagePath: o.ImagePath,
		Position:  positionBody{X: o.Position.X, Y: o.Position.Y, Z: o.Position.Z},
		CreatedAt: o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func (h *OrnamentHandler) changed() {
	if h.onChange != nil {
		h.onChange()
	}
}

// list handles GET /api/ornaments and returns the whole catalog.
func (h *OrnamentHandler) list(w http.ResponseWriter, r *http.Request) {
	ornaments, err := h.store.Ornaments().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list ornaments")
		return
	}

	response := listOrnamentsResponse{
		Ornaments: make([]ornamentResponse, 0, len(ornaments)),
	}
	for _, o := range ornaments {
		response.Ornaments = append(response.Ornaments, toResponse(o))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/ornaments/{id}.
func (h *OrnamentHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	ornament, err := h.store.Ornaments().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Ornament not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get ornament")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(ornament))
}

// create handles POST /api/ornaments.
func (h *OrnamentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrnamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Label == "" {
		writeError(w, http.StatusBadRequest, "Label is required")
		return
	}
	if req.Position == nil {
		writeError(w, http.StatusBadRequest, "Position is required")
		return
	}

	ornament := &store.Ornament{
		ID:        uuid.New().String(),
		Label:     req.Label,
		ImagePath: req.ImagePath,
		Position:  scene.Vec3{X: req.Position.X, Y: req.Position.Y, Z: req.Position.Z},
	}

	if err := h.store.Ornaments().Create(ornament); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create ornament")
		return
	}

	h.changed()
	writeJSON(w, http.StatusCreated, toResponse(ornament))
}

// update handles PUT /api/ornaments/{id}.
func (h *OrnamentHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	ornament, err := h.store.Ornaments().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Ornament not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get ornament")
		return
	}

	var req updateOrnamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Label != "" {
		ornament.Label = req.Label
	}
	if req.ImagePath != "" {
		ornament.ImagePath = req.ImagePath
	}
	if req.Position != nil {
		ornament.Position = scene.Vec3{X: req.Position.X, Y: req.Position.Y, Z: req.Position.Z}
	}

	if err := h.store.Ornaments().Update(ornament); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update ornament")
		return
	}

	h.changed()
	writeJSON(w, http.StatusOK, toResponse(ornament))
}

// delete handles DELETE /api/ornaments/{id}.
func (h *OrnamentHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Ornaments().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Ornament not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete ornament")
		return
	}

	h.changed()
	w.WriteHeader(http.StatusNoContent)
}
