package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Values are cloned on both save and read so callers never share a
// pointer with the store; a caller mutating a returned value cannot
// race another reader.
type Storage struct {
	mu sync.RWMutex

	players    map[model.Handle]*model.Player
	attendance map[model.MatchDate]*model.AttendanceSheet
	lineups    map[lineupKey]*model.Lineup
	payments   map[paymentKey]*model.PaymentRecord
	snapshots  map[snapshotKey]*model.Snapshot
}

type lineupKey struct {
	date model.MatchDate
	half model.Half
}

type paymentKey struct {
	period model.Period
	handle model.Handle
}

type snapshotKey struct {
	panel string
	ref   string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:    make(map[model.Handle]*model.Player),
		attendance: make(map[model.MatchDate]*model.AttendanceSheet),
		lineups:    make(map[lineupKey]*model.Lineup),
		payments:   make(map[paymentKey]*model.PaymentRecord),
		snapshots:  make(map[snapshotKey]*model.Snapshot),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func clonePlayer(p *model.Player) *model.Player {
	c := *p
	return &c
}

func cloneSheet(s *model.AttendanceSheet) *model.AttendanceSheet {
	c := *s
	c.Records = make([]model.AttendanceRecord, len(s.Records))
	copy(c.Records, s.Records)
	return &c
}

func cloneLineup(l *model.Lineup) *model.Lineup {
	c := *l
	c.SquadA = make([]model.LineupSlot, len(l.SquadA))
	copy(c.SquadA, l.SquadA)
	c.SquadB = make([]model.LineupSlot, len(l.SquadB))
	copy(c.SquadB, l.SquadB)
	return &c
}

func clonePayment(r *model.PaymentRecord) *model.PaymentRecord {
	c := *r
	return &c
}

func cloneSnapshot(s *model.Snapshot) *model.Snapshot {
	c := *s
	c.Payload = append([]byte(nil), s.Payload...)
	return &c
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.Handle.Key()] = clonePlayer(player)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, handle model.Handle) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[handle.Key()]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) DeletePlayer(ctx context.Context, handle model.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, handle.Key())
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, clonePlayer(p))
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].Handle.Key() < players[j].Handle.Key()
	})
	return players, nil
}

// Attendance operations

func (s *Storage) SaveAttendanceSheet(ctx context.Context, sheet *model.AttendanceSheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance[sheet.Date] = cloneSheet(sheet)
	return nil
}

func (s *Storage) GetAttendanceSheet(ctx context.Context, date model.MatchDate) (*model.AttendanceSheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sheet, ok := s.attendance[date]
	if !ok {
		return model.NewAttendanceSheet(date), nil
	}
	return cloneSheet(sheet), nil
}

func (s *Storage) DeleteAttendanceSheet(ctx context.Context, date model.MatchDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attendance, date)
	return nil
}

func (s *Storage) ListAttendanceDates(ctx context.Context) ([]model.MatchDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dates := make([]model.MatchDate, 0, len(s.attendance))
	for date := range s.attendance {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates, nil
}

// Lineup operations

func (s *Storage) SaveLineup(ctx context.Context, lineup *model.Lineup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineups[lineupKey{date: lineup.Date, half: lineup.Half}] = cloneLineup(lineup)
	return nil
}

func (s *Storage) GetLineup(ctx context.Context, date model.MatchDate, half model.Half) (*model.Lineup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lineup, ok := s.lineups[lineupKey{date: date, half: half}]
	if !ok {
		return nil, model.ErrLineupNotFound
	}
	return cloneLineup(lineup), nil
}

func (s *Storage) DeleteLineup(ctx context.Context, date model.MatchDate, half model.Half) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lineups, lineupKey{date: date, half: half})
	return nil
}

func (s *Storage) DeleteLineupsForDate(ctx context.Context, date model.MatchDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lineups, lineupKey{date: date, half: model.HalfFirst})
	delete(s.lineups, lineupKey{date: date, half: model.HalfSecond})
	return nil
}

// Payment operations

func (s *Storage) SavePaymentRecord(ctx context.Context, record *model.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[paymentKey{period: record.Period, handle: record.Handle.Key()}] = clonePayment(record)
	return nil
}

func (s *Storage) GetPaymentRecord(ctx context.Context, period model.Period, handle model.Handle) (*model.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.payments[paymentKey{period: period, handle: handle.Key()}]
	if !ok {
		return nil, model.ErrPaymentNotFound
	}
	return clonePayment(record), nil
}

func (s *Storage) ListPaymentRecords(ctx context.Context, period model.Period) ([]*model.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []*model.PaymentRecord
	for key, record := range s.payments {
		if key.period == period {
			records = append(records, clonePayment(record))
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Handle.Key() < records[j].Handle.Key()
	})
	return records, nil
}

// Snapshot operations

func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshotKey{panel: snapshot.Panel, ref: snapshot.Ref}] = cloneSnapshot(snapshot)
	return nil
}

func (s *Storage) GetSnapshot(ctx context.Context, panel, ref string) (*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[snapshotKey{panel: panel, ref: ref}]
	if !ok {
		return nil, model.ErrSnapshotNotFound
	}
	return cloneSnapshot(snapshot), nil
}

func (s *Storage) ListSnapshots(ctx context.Context, panel string) ([]*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var snapshots []*model.Snapshot
	for key, snapshot := range s.snapshots {
		if key.panel == panel {
			snapshots = append(snapshots, cloneSnapshot(snapshot))
		}
	}
	sort.Slice(snapshots, func(i, j int) bool {
		if !snapshots[i].SavedAt.Equal(snapshots[j].SavedAt) {
			return snapshots[i].SavedAt.After(snapshots[j].SavedAt)
		}
		return snapshots[i].Ref < snapshots[j].Ref
	})
	return snapshots, nil
}
