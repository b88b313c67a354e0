package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tesouraclub/tesoura-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		Handle:      "alice",
		DisplayName: "Alice",
		SkillScore:  7,
		Active:      true,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(player.Handle, retrieved.Handle)
	s.Equal(player.DisplayName, retrieved.DisplayName)
	s.Equal(7, retrieved.SkillScore)
	s.True(retrieved.Active)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayerRemovesFromIndex() {
	player := &model.Player{Handle: "alice", DisplayName: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestListPlayersSortedByHandle() {
	for _, h := range []model.Handle{"carol", "alice", "bob"} {
		_ = s.storage.SavePlayer(s.ctx, &model.Player{Handle: h})
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.Handle("alice"), players[0].Handle)
	s.Equal(model.Handle("bob"), players[1].Handle)
	s.Equal(model.Handle("carol"), players[2].Handle)
}

// Attendance tests

func (s *StorageSuite) TestGetAttendanceSheetDefaultsToEmpty() {
	sheet, err := s.storage.GetAttendanceSheet(s.ctx, "2024-06-02")
	s.Require().NoError(err)
	s.Equal(model.MatchDate("2024-06-02"), sheet.Date)
	s.Empty(sheet.Records)
}

func (s *StorageSuite) TestSaveAndGetAttendanceSheet() {
	sheet := model.NewAttendanceSheet("2024-06-02")
	sheet.Records = append(sheet.Records, model.AttendanceRecord{
		Date:      "2024-06-02",
		Handle:    "alice",
		Seq:       1,
		ArrivedAt: "08:30",
	})
	sheet.NextID = 1

	s.Require().NoError(s.storage.SaveAttendanceSheet(s.ctx, sheet))

	retrieved, err := s.storage.GetAttendanceSheet(s.ctx, "2024-06-02")
	s.Require().NoError(err)
	s.Equal(1, retrieved.NextID)
	s.Require().Len(retrieved.Records, 1)
	s.Equal(model.Handle("alice"), retrieved.Records[0].Handle)
	s.Equal("08:30", retrieved.Records[0].ArrivedAt)
}

func (s *StorageSuite) TestDeleteAttendanceSheetRemovesFromDateIndex() {
	_ = s.storage.SaveAttendanceSheet(s.ctx, model.NewAttendanceSheet("2024-06-02"))
	_ = s.storage.SaveAttendanceSheet(s.ctx, model.NewAttendanceSheet("2024-06-09"))

	s.Require().NoError(s.storage.DeleteAttendanceSheet(s.ctx, "2024-06-02"))

	dates, err := s.storage.ListAttendanceDates(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.MatchDate{"2024-06-09"}, dates)
}

func (s *StorageSuite) TestListAttendanceDatesAscending() {
	for _, date := range []model.MatchDate{"2024-06-16", "2024-06-02", "2024-06-09"} {
		_ = s.storage.SaveAttendanceSheet(s.ctx, model.NewAttendanceSheet(date))
	}

	dates, err := s.storage.ListAttendanceDates(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.MatchDate{"2024-06-02", "2024-06-09", "2024-06-16"}, dates)
}

// Lineup tests

func (s *StorageSuite) TestSaveAndGetLineup() {
	lineup := &model.Lineup{
		Date:      "2024-06-02",
		Half:      model.HalfFirst,
		SquadSize: 2,
		SquadA:    []model.LineupSlot{{Slot: 1, Handle: "alice"}, {Slot: 2}},
		SquadB:    []model.LineupSlot{{Slot: 1, Handle: "bob"}, {Slot: 2}},
	}

	s.Require().NoError(s.storage.SaveLineup(s.ctx, lineup))

	retrieved, err := s.storage.GetLineup(s.ctx, "2024-06-02", model.HalfFirst)
	s.Require().NoError(err)
	s.Equal(lineup.SquadA, retrieved.SquadA)
	s.Equal(lineup.SquadB, retrieved.SquadB)
}

func (s *StorageSuite) TestGetLineupNotFound() {
	_, err := s.storage.GetLineup(s.ctx, "2024-06-02", model.HalfSecond)
	s.ErrorIs(err, model.ErrLineupNotFound)
}

func (s *StorageSuite) TestDeleteLineupsForDate() {
	_ = s.storage.SaveLineup(s.ctx, &model.Lineup{Date: "2024-06-02", Half: model.HalfFirst})
	_ = s.storage.SaveLineup(s.ctx, &model.Lineup{Date: "2024-06-02", Half: model.HalfSecond})

	s.Require().NoError(s.storage.DeleteLineupsForDate(s.ctx, "2024-06-02"))

	_, err := s.storage.GetLineup(s.ctx, "2024-06-02", model.HalfFirst)
	s.ErrorIs(err, model.ErrLineupNotFound)
	_, err = s.storage.GetLineup(s.ctx, "2024-06-02", model.HalfSecond)
	s.ErrorIs(err, model.ErrLineupNotFound)
}

// Payment tests

func (s *StorageSuite) TestSaveAndGetPaymentRecord() {
	record := &model.PaymentRecord{
		Period: "2024-06",
		Handle: "alice",
		Amount: 50,
		PaidAt: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.storage.SavePaymentRecord(s.ctx, record))

	retrieved, err := s.storage.GetPaymentRecord(s.ctx, "2024-06", "alice")
	s.Require().NoError(err)
	s.Equal(50, retrieved.Amount)

	_, err = s.storage.GetPaymentRecord(s.ctx, "2024-07", "alice")
	s.ErrorIs(err, model.ErrPaymentNotFound)
}

func (s *StorageSuite) TestListPaymentRecordsFiltersByPeriod() {
	_ = s.storage.SavePaymentRecord(s.ctx, &model.PaymentRecord{Period: "2024-06", Handle: "bob", Amount: 50})
	_ = s.storage.SavePaymentRecord(s.ctx, &model.PaymentRecord{Period: "2024-06", Handle: "alice", Amount: 50})
	_ = s.storage.SavePaymentRecord(s.ctx, &model.PaymentRecord{Period: "2024-07", Handle: "carol", Amount: 50})

	records, err := s.storage.ListPaymentRecords(s.ctx, "2024-06")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(model.Handle("alice"), records[0].Handle)
	s.Equal(model.Handle("bob"), records[1].Handle)
}

// Snapshot tests

func (s *StorageSuite) TestSaveAndGetSnapshot() {
	snapshot := &model.Snapshot{
		Panel:   "jogadores",
		Ref:     "ref-1",
		SavedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Payload: json.RawMessage(`{"rows":[{"handle":"alice"}]}`),
	}

	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, snapshot))

	retrieved, err := s.storage.GetSnapshot(s.ctx, "jogadores", "ref-1")
	s.Require().NoError(err)
	s.JSONEq(string(snapshot.Payload), string(retrieved.Payload))

	_, err = s.storage.GetSnapshot(s.ctx, "jogadores", "missing")
	s.ErrorIs(err, model.ErrSnapshotNotFound)
}

func (s *StorageSuite) TestListSnapshotsNewestFirst() {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveSnapshot(s.ctx, &model.Snapshot{Panel: "caixa", Ref: "old", SavedAt: base})
	_ = s.storage.SaveSnapshot(s.ctx, &model.Snapshot{Panel: "caixa", Ref: "new", SavedAt: base.Add(time.Hour)})

	snapshots, err := s.storage.ListSnapshots(s.ctx, "caixa")
	s.Require().NoError(err)
	s.Require().Len(snapshots, 2)
	s.Equal("new", snapshots[0].Ref)
	s.Equal("old", snapshots[1].Ref)
}
