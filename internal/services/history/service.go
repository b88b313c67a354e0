package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage"
)

// DefaultWindow is the number of past sessions examined for absence counts
const DefaultWindow = 12

// PlayerStats summarizes a player's recent attendance behavior
type PlayerStats struct {
	// MissedCount is how many of the lookback sessions the player skipped
	MissedCount int
	// AttendedPrevious reports presence on the previous calendar session
	// (date minus 7 days, independent of what the ledger happens to hold)
	AttendedPrevious bool
	// PlayedBothHalvesPrevious reports assignment in both halves'
	// lineups on the previous session
	PlayedBothHalvesPrevious bool
}

// Service aggregates attendance history for admission decisions
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new history aggregator
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// Stats computes PlayerStats for each requested handle, looking back
// over the last `window` dates strictly before asOf that have any
// attendance records
func (s *Service) Stats(ctx context.Context, asOf model.MatchDate, window int, handles []model.Handle) (map[model.Handle]PlayerStats, error) {
	if window <= 0 {
		window = DefaultWindow
	}

	lookback, err := s.lookbackPresence(ctx, asOf, window)
	if err != nil {
		return nil, err
	}

	prevDate := asOf.Previous()
	prevSheet, err := s.storage.GetAttendanceSheet(ctx, prevDate)
	if err != nil {
		return nil, fmt.Errorf("reading attendance for %s: %w", prevDate, err)
	}

	prevBoth, err := s.bothHalves(ctx, prevDate)
	if err != nil {
		return nil, err
	}

	stats := make(map[model.Handle]PlayerStats, len(handles))
	for _, handle := range handles {
		key := handle.Key()
		missed := 0
		for _, present := range lookback {
			if !present[key] {
				missed++
			}
		}
		stats[key] = PlayerStats{
			MissedCount:              missed,
			AttendedPrevious:         prevSheet.Find(handle) != nil,
			PlayedBothHalvesPrevious: prevBoth[key],
		}
	}
	return stats, nil
}

// lookbackPresence returns one presence set per lookback date
func (s *Service) lookbackPresence(ctx context.Context, asOf model.MatchDate, window int) ([]map[model.Handle]bool, error) {
	dates, err := s.storage.ListAttendanceDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing attendance dates: %w", err)
	}

	var presence []map[model.Handle]bool
	// Dates arrive ascending; walk backwards from the newest
	for i := len(dates) - 1; i >= 0 && len(presence) < window; i-- {
		if dates[i] >= asOf {
			continue
		}
		sheet, err := s.storage.GetAttendanceSheet(ctx, dates[i])
		if err != nil {
			return nil, fmt.Errorf("reading attendance for %s: %w", dates[i], err)
		}
		if len(sheet.Records) == 0 {
			continue
		}
		set := make(map[model.Handle]bool, len(sheet.Records))
		for _, r := range sheet.Records {
			set[r.Handle.Key()] = true
		}
		presence = append(presence, set)
	}
	return presence, nil
}

// bothHalves returns the handles assigned in both halves on a date
func (s *Service) bothHalves(ctx context.Context, date model.MatchDate) (map[model.Handle]bool, error) {
	first, err := s.storage.GetLineup(ctx, date, model.HalfFirst)
	if errors.Is(err, model.ErrLineupNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading first-half lineup for %s: %w", date, err)
	}

	second, err := s.storage.GetLineup(ctx, date, model.HalfSecond)
	if errors.Is(err, model.ErrLineupNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading second-half lineup for %s: %w", date, err)
	}

	both := make(map[model.Handle]bool)
	for _, handle := range first.Assigned() {
		if second.Contains(handle) {
			both[handle.Key()] = true
		}
	}
	return both, nil
}
