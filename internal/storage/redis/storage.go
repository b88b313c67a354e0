package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Pipeline keeps the value and the handle index in step
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.Handle), data, 0)
	pipe.SAdd(ctx, playersIndexKey(), string(player.Handle.Key()))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, handle model.Handle) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(handle)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, handle model.Handle) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(handle))
	pipe.SRem(ctx, playersIndexKey(), string(handle.Key()))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	handles, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(handles) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, len(handles))
	for i, h := range handles {
		keys[i] = playerKey(model.Handle(h))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index may lag a delete
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].Handle.Key() < players[j].Handle.Key()
	})
	return players, nil
}

// Attendance operations

func (s *Storage) SaveAttendanceSheet(ctx context.Context, sheet *model.AttendanceSheet) error {
	data, err := json.Marshal(sheet)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, attendanceKey(sheet.Date), data, 0)
	pipe.SAdd(ctx, attendanceDatesIndexKey(), string(sheet.Date))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAttendanceSheet(ctx context.Context, date model.MatchDate) (*model.AttendanceSheet, error) {
	data, err := s.client.Get(ctx, attendanceKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewAttendanceSheet(date), nil
		}
		return nil, err
	}

	var sheet model.AttendanceSheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (s *Storage) DeleteAttendanceSheet(ctx context.Context, date model.MatchDate) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, attendanceKey(date))
	pipe.SRem(ctx, attendanceDatesIndexKey(), string(date))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListAttendanceDates(ctx context.Context) ([]model.MatchDate, error) {
	members, err := s.client.SMembers(ctx, attendanceDatesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	dates := make([]model.MatchDate, 0, len(members))
	for _, m := range members {
		dates = append(dates, model.MatchDate(m))
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates, nil
}

// Lineup operations

func (s *Storage) SaveLineup(ctx context.Context, lineup *model.Lineup) error {
	data, err := json.Marshal(lineup)
	if err != nil {
		return err
	}

	// Single-key SET, so the replace is atomic for readers
	return s.client.Set(ctx, lineupKey(lineup.Date, lineup.Half), data, 0).Err()
}

func (s *Storage) GetLineup(ctx context.Context, date model.MatchDate, half model.Half) (*model.Lineup, error) {
	data, err := s.client.Get(ctx, lineupKey(date, half)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLineupNotFound
		}
		return nil, err
	}

	var lineup model.Lineup
	if err := json.Unmarshal(data, &lineup); err != nil {
		return nil, err
	}
	return &lineup, nil
}

func (s *Storage) DeleteLineup(ctx context.Context, date model.MatchDate, half model.Half) error {
	return s.client.Del(ctx, lineupKey(date, half)).Err()
}

func (s *Storage) DeleteLineupsForDate(ctx context.Context, date model.MatchDate) error {
	return s.client.Del(ctx, lineupKey(date, model.HalfFirst), lineupKey(date, model.HalfSecond)).Err()
}

// Payment operations

func (s *Storage) SavePaymentRecord(ctx context.Context, record *model.PaymentRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, paymentKey(record.Period, record.Handle), data, 0)
	pipe.SAdd(ctx, paymentsIndexKey(record.Period), string(record.Handle.Key()))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPaymentRecord(ctx context.Context, period model.Period, handle model.Handle) (*model.PaymentRecord, error) {
	data, err := s.client.Get(ctx, paymentKey(period, handle)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPaymentNotFound
		}
		return nil, err
	}

	var record model.PaymentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) ListPaymentRecords(ctx context.Context, period model.Period) ([]*model.PaymentRecord, error) {
	handles, err := s.client.SMembers(ctx, paymentsIndexKey(period)).Result()
	if err != nil {
		return nil, err
	}
	if len(handles) == 0 {
		return []*model.PaymentRecord{}, nil
	}

	keys := make([]string, len(handles))
	for i, h := range handles {
		keys[i] = paymentKey(period, model.Handle(h))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.PaymentRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var record model.PaymentRecord
		if err := json.Unmarshal([]byte(val.(string)), &record); err != nil {
			continue
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Handle.Key() < records[j].Handle.Key()
	})
	return records, nil
}

// Snapshot operations

func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, snapshotKey(snapshot.Panel, snapshot.Ref), data, 0)
	pipe.SAdd(ctx, snapshotsIndexKey(snapshot.Panel), snapshot.Ref)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSnapshot(ctx context.Context, panel, ref string) (*model.Snapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey(panel, ref)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSnapshotNotFound
		}
		return nil, err
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (s *Storage) ListSnapshots(ctx context.Context, panel string) ([]*model.Snapshot, error) {
	refs, err := s.client.SMembers(ctx, snapshotsIndexKey(panel)).Result()
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return []*model.Snapshot{}, nil
	}

	keys := make([]string, len(refs))
	for i, ref := range refs {
		keys[i] = snapshotKey(panel, ref)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	snapshots := make([]*model.Snapshot, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var snapshot model.Snapshot
		if err := json.Unmarshal([]byte(val.(string)), &snapshot); err != nil {
			continue
		}
		snapshots = append(snapshots, &snapshot)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if !snapshots[i].SavedAt.Equal(snapshots[j].SavedAt) {
			return snapshots[i].SavedAt.After(snapshots[j].SavedAt)
		}
		return snapshots[i].Ref < snapshots[j].Ref
	})
	return snapshots, nil
}
