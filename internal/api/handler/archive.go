package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tesouraclub/tesoura-go/internal/api/request"
	"github.com/tesouraclub/tesoura-go/internal/api/response"
	"github.com/tesouraclub/tesoura-go/internal/services/archive"
)

// ArchiveHandler handles panel snapshot endpoints
type ArchiveHandler struct {
	archiveService *archive.Service
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(archiveService *archive.Service) *ArchiveHandler {
	return &ArchiveHandler{archiveService: archiveService}
}

// Save handles POST /api/v1/archive/{panel}
func (h *ArchiveHandler) Save(w http.ResponseWriter, r *http.Request) {
	panel := mux.Vars(r)["panel"]

	var req request.SaveSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	snapshot, err := h.archiveService.Save(r.Context(), panel, req.Payload)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SnapshotFromModel(snapshot))
}

// List handles GET /api/v1/archive/{panel}
func (h *ArchiveHandler) List(w http.ResponseWriter, r *http.Request) {
	panel := mux.Vars(r)["panel"]

	snapshots, err := h.archiveService.List(r.Context(), panel)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Snapshot, len(snapshots))
	for i, s := range snapshots {
		out[i] = response.SnapshotFromModel(s)
	}
	response.JSON(w, http.StatusOK, out)
}

// Load handles GET /api/v1/archive/{panel}/{ref}
func (h *ArchiveHandler) Load(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	snapshot, err := h.archiveService.Load(r.Context(), vars["panel"], vars["ref"])
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SnapshotWithPayloadFromModel(snapshot))
}
