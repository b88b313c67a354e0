package storage

import (
	"context"

	"github.com/tesouraclub/tesoura-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations. Handles are stored under their canonical key.
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, handle model.Handle) (*model.Player, error)
	DeletePlayer(ctx context.Context, handle model.Handle) error
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Attendance operations. A sheet is one date's full attendance state,
	// written as a single document so per-date mutations replace atomically.
	// GetAttendanceSheet returns a fresh empty sheet when the date has none.
	SaveAttendanceSheet(ctx context.Context, sheet *model.AttendanceSheet) error
	GetAttendanceSheet(ctx context.Context, date model.MatchDate) (*model.AttendanceSheet, error)
	DeleteAttendanceSheet(ctx context.Context, date model.MatchDate) error
	ListAttendanceDates(ctx context.Context) ([]model.MatchDate, error)

	// Lineup operations. Save replaces any prior lineup for (date, half).
	SaveLineup(ctx context.Context, lineup *model.Lineup) error
	GetLineup(ctx context.Context, date model.MatchDate, half model.Half) (*model.Lineup, error)
	DeleteLineup(ctx context.Context, date model.MatchDate, half model.Half) error
	DeleteLineupsForDate(ctx context.Context, date model.MatchDate) error

	// Payment operations
	SavePaymentRecord(ctx context.Context, record *model.PaymentRecord) error
	GetPaymentRecord(ctx context.Context, period model.Period, handle model.Handle) (*model.PaymentRecord, error)
	ListPaymentRecords(ctx context.Context, period model.Period) ([]*model.PaymentRecord, error)

	// Snapshot operations
	SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error
	GetSnapshot(ctx context.Context, panel, ref string) (*model.Snapshot, error)
	ListSnapshots(ctx context.Context, panel string) ([]*model.Snapshot, error)
}
