package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tesouraclub/tesoura-go/internal/api/response"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/services/ledger"
	"github.com/tesouraclub/tesoura-go/internal/services/lineup"
	"github.com/tesouraclub/tesoura-go/internal/services/payment"
)

// SessionHandler serves the combined view of one match date
type SessionHandler struct {
	ledgerService  *ledger.Service
	paymentService *payment.Service
	controller     *lineup.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(ledgerService *ledger.Service, paymentService *payment.Service, controller *lineup.Controller) *SessionHandler {
	return &SessionHandler{
		ledgerService:  ledgerService,
		paymentService: paymentService,
		controller:     controller,
	}
}

// Get handles GET /api/v1/sessions/{date}
// Returns the check-in list, both lineups if computed, and the payment
// status of every checked-in player.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	handles := make([]model.Handle, len(records))
	for i, rec := range records {
		handles[i] = rec.Handle
	}

	statuses, err := h.paymentService.StatusMap(r.Context(), date, handles)
	if err != nil {
		WriteError(w, err)
		return
	}

	session := response.Session{
		Date:       string(date),
		Attendance: response.AttendanceFromRecords(date, records),
		Payments:   response.PaymentStatusesFromModel(date, statuses),
	}

	for _, half := range []model.Half{model.HalfFirst, model.HalfSecond} {
		stored, err := h.controller.Get(r.Context(), date, half)
		if errors.Is(err, model.ErrLineupNotFound) {
			continue
		}
		if err != nil {
			WriteError(w, err)
			return
		}
		converted := response.LineupFromModel(stored)
		if half == model.HalfFirst {
			session.FirstHalf = &converted
		} else {
			session.SecondHalf = &converted
		}
	}

	response.JSON(w, http.StatusOK, session)
}
