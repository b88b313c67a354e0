package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tesouraclub/tesoura-go/internal/api/handler"
	"github.com/tesouraclub/tesoura-go/internal/api/middleware"
	"github.com/tesouraclub/tesoura-go/internal/services/archive"
	"github.com/tesouraclub/tesoura-go/internal/services/ledger"
	"github.com/tesouraclub/tesoura-go/internal/services/lineup"
	"github.com/tesouraclub/tesoura-go/internal/services/payment"
	"github.com/tesouraclub/tesoura-go/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	RosterService    *roster.Service
	LedgerService    *ledger.Service
	PaymentService   *payment.Service
	ArchiveService   *archive.Service
	LineupController *lineup.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	// Match on the encoded path so an escaped value stays one segment
	// and reaches the handler's own validation
	r.UseEncodedPath()

	// Create handlers
	rosterHandler := handler.NewRosterHandler(cfg.RosterService)
	attendanceHandler := handler.NewAttendanceHandler(cfg.LedgerService)
	lineupHandler := handler.NewLineupHandler(cfg.LineupController)
	paymentHandler := handler.NewPaymentHandler(cfg.PaymentService, cfg.RosterService)
	archiveHandler := handler.NewArchiveHandler(cfg.ArchiveService)
	sessionHandler := handler.NewSessionHandler(cfg.LedgerService, cfg.PaymentService, cfg.LineupController)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player directory routes
	api.HandleFunc("/players", rosterHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", rosterHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{handle}", rosterHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{handle}", rosterHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{handle}", rosterHandler.Delete).Methods(http.MethodDelete)

	// Attendance routes
	api.HandleFunc("/attendance/{date}", attendanceHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/attendance/{date}", attendanceHandler.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/attendance/{date}/checkins", attendanceHandler.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/attendance/{date}/checkins/{handle}", attendanceHandler.UpdateCheckIn).Methods(http.MethodPatch)
	api.HandleFunc("/attendance/{date}/checkins/{handle}", attendanceHandler.RemoveCheckIn).Methods(http.MethodDelete)

	// Lineup routes
	api.HandleFunc("/lineups/{date}/{half}", lineupHandler.Compute).Methods(http.MethodPost)
	api.HandleFunc("/lineups/{date}/{half}", lineupHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/lineups/{date}/{half}", lineupHandler.Undo).Methods(http.MethodDelete)

	// Payment routes
	api.HandleFunc("/payments/status/{date}", paymentHandler.Statuses).Methods(http.MethodGet)
	api.HandleFunc("/payments/{period}", paymentHandler.Record).Methods(http.MethodPost)
	api.HandleFunc("/payments/{period}", paymentHandler.List).Methods(http.MethodGet)

	// Archive routes
	api.HandleFunc("/archive/{panel}", archiveHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/archive/{panel}", archiveHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/archive/{panel}/{ref}", archiveHandler.Load).Methods(http.MethodGet)

	// Combined per-date view
	api.HandleFunc("/sessions/{date}", sessionHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
