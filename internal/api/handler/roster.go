package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tesouraclub/tesoura-go/internal/api/request"
	"github.com/tesouraclub/tesoura-go/internal/api/response"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/services/roster"
)

// RosterHandler handles player directory endpoints
type RosterHandler struct {
	rosterService *roster.Service
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService *roster.Service) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// Create handles POST /api/v1/players
func (h *RosterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.rosterService.Create(r.Context(), roster.CreateInput{
		Handle:      model.Handle(req.Handle),
		DisplayName: req.DisplayName,
		SkillScore:  req.SkillScore,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/players
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Get handles GET /api/v1/players/{handle}
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	handle := model.Handle(mux.Vars(r)["handle"])

	player, err := h.rosterService.Get(r.Context(), handle)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{handle}
func (h *RosterHandler) Update(w http.ResponseWriter, r *http.Request) {
	handle := model.Handle(mux.Vars(r)["handle"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.rosterService.Update(r.Context(), handle, roster.UpdateInput{
		DisplayName: req.DisplayName,
		SkillScore:  req.SkillScore,
		Active:      req.Active,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{handle}
func (h *RosterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handle := model.Handle(mux.Vars(r)["handle"])

	if err := h.rosterService.Delete(r.Context(), handle); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
