package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tesouraclub/tesoura-go/internal/api/response"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/services/lineup"
)

// LineupHandler handles squad lineup endpoints
type LineupHandler struct {
	controller *lineup.Controller
}

// NewLineupHandler creates a new lineup handler
func NewLineupHandler(controller *lineup.Controller) *LineupHandler {
	return &LineupHandler{controller: controller}
}

func lineupVars(r *http.Request) (model.MatchDate, model.Half, error) {
	vars := mux.Vars(r)
	date, err := model.ParseMatchDate(vars["date"])
	if err != nil {
		return "", "", err
	}
	half, err := model.ParseHalf(vars["half"])
	if err != nil {
		return "", "", err
	}
	return date, half, nil
}

// Compute handles POST /api/v1/lineups/{date}/{half}
func (h *LineupHandler) Compute(w http.ResponseWriter, r *http.Request) {
	date, half, err := lineupVars(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	computed, err := h.controller.Compute(r.Context(), date, half)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LineupFromModel(computed))
}

// Get handles GET /api/v1/lineups/{date}/{half}
func (h *LineupHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, half, err := lineupVars(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	stored, err := h.controller.Get(r.Context(), date, half)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LineupFromModel(stored))
}

// Undo handles DELETE /api/v1/lineups/{date}/{half}
func (h *LineupHandler) Undo(w http.ResponseWriter, r *http.Request) {
	date, half, err := lineupVars(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.Undo(r.Context(), date, half); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
