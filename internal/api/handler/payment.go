package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tesouraclub/tesoura-go/internal/api/request"
	"github.com/tesouraclub/tesoura-go/internal/api/response"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/services/payment"
	"github.com/tesouraclub/tesoura-go/internal/services/roster"
)

// PaymentHandler handles monthly fee endpoints
type PaymentHandler struct {
	paymentService *payment.Service
	rosterService  *roster.Service
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *payment.Service, rosterService *roster.Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		rosterService:  rosterService,
	}
}

// Record handles POST /api/v1/payments/{period}
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	period, err := model.ParsePeriod(mux.Vars(r)["period"])
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.paymentService.RecordPayment(r.Context(), period, model.Handle(req.Handle), req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PaymentFromModel(record))
}

// List handles GET /api/v1/payments/{period}
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	period, err := model.ParsePeriod(mux.Vars(r)["period"])
	if err != nil {
		WriteError(w, err)
		return
	}

	records, err := h.paymentService.ListPayments(r.Context(), period)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PaymentsFromModel(records))
}

// Statuses handles GET /api/v1/payments/status/{date}
// Resolves the payment status of every active player as of the date.
func (h *PaymentHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	date, err := model.ParseMatchDate(mux.Vars(r)["date"])
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.rosterService.ActivePlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	handles := make([]model.Handle, len(players))
	for i, p := range players {
		handles[i] = p.Handle
	}

	statuses, err := h.paymentService.StatusMap(r.Context(), date, handles)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PaymentStatusesFromModel(date, statuses))
}
