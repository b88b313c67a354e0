package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/clock"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage"
)

// Service resolves payment standing per billing period and records
// monthly fee payments into the finance ledger.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new payment service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// BillingCutoff returns the admission deadline for a period: the
// Monday following the second Sunday of the billing month. Before
// the cutoff every member is pending; from it onward the ledger
// decides paid versus overdue.
func BillingCutoff(period model.Period) time.Time {
	first := period.Start()
	daysToSunday := (7 - int(first.Weekday())) % 7
	secondSunday := first.AddDate(0, 0, daysToSunday+7)
	return secondSunday.AddDate(0, 0, 1)
}

// Status returns the player's standing for the billing period the
// date falls in
func (s *Service) Status(ctx context.Context, date model.MatchDate, handle model.Handle) (model.PaymentStatus, error) {
	period := model.PeriodOf(date)
	if date.Time().Before(BillingCutoff(period)) {
		return model.PaymentPending, nil
	}

	_, err := s.storage.GetPaymentRecord(ctx, period, handle)
	switch {
	case err == nil:
		return model.PaymentPaid, nil
	case errors.Is(err, model.ErrPaymentNotFound):
		return model.PaymentOverdue, nil
	default:
		return "", fmt.Errorf("payment lookup for %s: %w", handle.Key(), err)
	}
}

// StatusMap resolves standing for a set of handles at once
func (s *Service) StatusMap(ctx context.Context, date model.MatchDate, handles []model.Handle) (map[model.Handle]model.PaymentStatus, error) {
	statuses := make(map[model.Handle]model.PaymentStatus, len(handles))
	for _, handle := range handles {
		status, err := s.Status(ctx, date, handle)
		if err != nil {
			return nil, err
		}
		statuses[handle.Key()] = status
	}
	return statuses, nil
}

// RecordPayment writes a fee payment for (period, handle).
// Re-recording overwrites the prior record for the same key.
func (s *Service) RecordPayment(ctx context.Context, period model.Period, handle model.Handle, amount int) (*model.PaymentRecord, error) {
	if err := model.ValidateHandle(handle); err != nil {
		return nil, err
	}

	record := &model.PaymentRecord{
		Period: period,
		Handle: handle,
		Amount: amount,
		PaidAt: s.clock.Now(),
	}
	if err := s.storage.SavePaymentRecord(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		slog.String("period", string(period)),
		slog.String("handle", string(handle.Key())),
		slog.Int("amount", amount),
	)
	return record, nil
}

// ListPayments returns all fee payments recorded for a period
func (s *Service) ListPayments(ctx context.Context, period model.Period) ([]*model.PaymentRecord, error) {
	return s.storage.ListPaymentRecords(ctx, period)
}
