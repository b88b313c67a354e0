package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tesouraclub/tesoura-go/internal/api/request"
	"github.com/tesouraclub/tesoura-go/internal/api/response"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/services/ledger"
)

// AttendanceHandler handles check-in sheet endpoints
type AttendanceHandler struct {
	ledgerService *ledger.Service
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(ledgerService *ledger.Service) *AttendanceHandler {
	return &AttendanceHandler{ledgerService: ledgerService}
}

// Get handles GET /api/v1/attendance/{date}
func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, err := model.ParseMatchDate(mux.Vars(r)["date"])
	if err != nil {
		WriteError(w, err)
		return
	}

	records, err := h.ledgerService.List(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AttendanceFromRecords(date, records))
}

// CheckIn handles POST /api/v1/attendance/{date}/checkins
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	date, err := model.ParseMatchDate(mux.Vars(r)["date"])
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.ledgerService.CheckIn(r.Context(), date, model.Handle(req.Handle), req.ArrivedAt, req.Note)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CheckInFromModel(*record))
}

// UpdateCheckIn handles PATCH /api/v1/attendance/{date}/checkins/{handle}
func (h *AttendanceHandler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := model.ParseMatchDate(vars["date"])
	if err != nil {
		WriteError(w, err)
		return
	}
	handle := model.Handle(vars["handle"])

	var req request.UpdateCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.OptedOut != nil {
		if err := h.ledgerService.SetOptedOut(r.Context(), date, handle, *req.OptedOut); err != nil {
			WriteError(w, err)
			return
		}
	}
	if req.LeftEarly != nil {
		if err := h.ledgerService.SetLeftEarly(r.Context(), date, handle, *req.LeftEarly); err != nil {
			WriteError(w, err)
			return
		}
	}

	records, err := h.ledgerService.List(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}
	for _, rec := range records {
		if rec.Handle.Key() == handle.Key() {
			response.JSON(w, http.StatusOK, response.CheckInFromModel(rec))
			return
		}
	}
	WriteError(w, model.ErrAttendanceNotFound)
}

// RemoveCheckIn handles DELETE /api/v1/attendance/{date}/checkins/{handle}
func (h *AttendanceHandler) RemoveCheckIn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := model.ParseMatchDate(vars["date"])
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.ledgerService.Remove(r.Context(), date, model.Handle(vars["handle"])); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Clear handles DELETE /api/v1/attendance/{date}
func (h *AttendanceHandler) Clear(w http.ResponseWriter, r *http.Request) {
	date, err := model.ParseMatchDate(mux.Vars(r)["date"])
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.ledgerService.Clear(r.Context(), date); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
