package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/clock"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage"
)

// Service manages the per-date attendance ledger.
//
// Mutations for a date are serialized by a per-date mutex so the
// contiguous-sequence invariant survives concurrent check-ins;
// different dates never contend.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[model.MatchDate]*sync.Mutex
}

// New creates a new attendance ledger service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
		locks:   make(map[model.MatchDate]*sync.Mutex),
	}
}

// dateLock returns the mutex guarding one date's sheet
func (s *Service) dateLock(date model.MatchDate) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[date]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[date] = lock
	}
	return lock
}

// CheckIn records that a player has arrived for the date. The record
// receives the next arrival sequence number for that date. An empty
// arrivedAt defaults to the current time truncated to the minute.
func (s *Service) CheckIn(ctx context.Context, date model.MatchDate, handle model.Handle, arrivedAt, note string) (*model.AttendanceRecord, error) {
	if err := model.ValidateHandle(handle); err != nil {
		return nil, err
	}
	if arrivedAt == "" {
		arrivedAt = s.clock.Now().Format("15:04")
	} else if _, err := time.Parse("15:04", arrivedAt); err != nil {
		return nil, model.ErrInvalidTime
	}

	lock := s.dateLock(date)
	lock.Lock()
	defer lock.Unlock()

	sheet, err := s.storage.GetAttendanceSheet(ctx, date)
	if err != nil {
		return nil, err
	}
	if sheet.Find(handle) != nil {
		return nil, model.ErrDuplicateCheckIn
	}

	record := model.AttendanceRecord{
		Date:      date,
		Handle:    handle,
		Seq:       sheet.MaxSeq() + 1,
		ArrivedAt: arrivedAt,
		Note:      note,
		ID:        sheet.NextID,
	}
	sheet.NextID++
	sheet.Records = append(sheet.Records, record)

	if err := s.storage.SaveAttendanceSheet(ctx, sheet); err != nil {
		return nil, err
	}

	s.logger.Info("player checked in",
		slog.String("date", string(date)),
		slog.String("handle", string(handle.Key())),
		slog.Int("seq", record.Seq),
	)

	return &record, nil
}

// SetOptedOut marks a present player as excluded from lineup
// consideration. Idempotent.
func (s *Service) SetOptedOut(ctx context.Context, date model.MatchDate, handle model.Handle, optedOut bool) error {
	return s.setFlag(ctx, date, handle, func(r *model.AttendanceRecord) {
		r.OptedOut = optedOut
	})
}

// SetLeftEarly marks a player as having left before the second half.
// Idempotent.
func (s *Service) SetLeftEarly(ctx context.Context, date model.MatchDate, handle model.Handle, leftEarly bool) error {
	return s.setFlag(ctx, date, handle, func(r *model.AttendanceRecord) {
		r.LeftEarly = leftEarly
	})
}

func (s *Service) setFlag(ctx context.Context, date model.MatchDate, handle model.Handle, apply func(*model.AttendanceRecord)) error {
	lock := s.dateLock(date)
	lock.Lock()
	defer lock.Unlock()

	sheet, err := s.storage.GetAttendanceSheet(ctx, date)
	if err != nil {
		return err
	}
	record := sheet.Find(handle)
	if record == nil {
		return model.ErrAttendanceNotFound
	}

	apply(record)
	return s.storage.SaveAttendanceSheet(ctx, sheet)
}

// Remove deletes a player's record and renumbers the remaining
// records for the date to a contiguous 1..k range, preserving the
// prior arrival order. Keeping the range gap-free keeps downstream
// ordering stable.
func (s *Service) Remove(ctx context.Context, date model.MatchDate, handle model.Handle) error {
	lock := s.dateLock(date)
	lock.Lock()
	defer lock.Unlock()

	sheet, err := s.storage.GetAttendanceSheet(ctx, date)
	if err != nil {
		return err
	}
	if !sheet.Remove(handle) {
		return model.ErrAttendanceNotFound
	}
	sheet.Resequence()

	if err := s.storage.SaveAttendanceSheet(ctx, sheet); err != nil {
		return err
	}

	s.logger.Info("attendance record removed",
		slog.String("date", string(date)),
		slog.String("handle", string(handle.Key())),
	)
	return nil
}

// Clear deletes all attendance and lineup data for the date,
// resetting the session for a full re-run
func (s *Service) Clear(ctx context.Context, date model.MatchDate) error {
	lock := s.dateLock(date)
	lock.Lock()
	defer lock.Unlock()

	if err := s.storage.DeleteAttendanceSheet(ctx, date); err != nil {
		return err
	}
	if err := s.storage.DeleteLineupsForDate(ctx, date); err != nil {
		return err
	}

	s.logger.Info("session cleared", slog.String("date", string(date)))
	return nil
}

// List returns the date's records ordered by sequence ascending
func (s *Service) List(ctx context.Context, date model.MatchDate) ([]model.AttendanceRecord, error) {
	sheet, err := s.storage.GetAttendanceSheet(ctx, date)
	if err != nil {
		return nil, err
	}
	return sheet.Sorted(), nil
}
