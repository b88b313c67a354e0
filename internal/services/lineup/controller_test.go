package lineup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/mocks"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/services/history"
	"github.com/tesouraclub/tesoura-go/internal/services/ledger"
	"github.com/tesouraclub/tesoura-go/internal/services/payment"
	"github.com/tesouraclub/tesoura-go/internal/services/roster"
	"github.com/tesouraclub/tesoura-go/internal/services/selection"
	"github.com/tesouraclub/tesoura-go/internal/storage/memory"
	"github.com/tesouraclub/tesoura-go/internal/testutil"
)

// testDate is before the billing cutoff, so payment standing stays
// pending and does not skew admission
const testDate = model.MatchDate("2024-06-02")

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	ledger     *ledger.Service
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC))
	s.controller = s.newController(s.storage, Config{SquadSize: 2})
	s.ctx = context.Background()
}

func (s *ControllerSuite) newController(store *memory.Storage, cfg Config) *Controller {
	logger := testutil.NopLogger()
	rosterService := roster.New(store, s.clock, logger)
	s.ledger = ledger.New(store, s.clock, logger)
	historyService := history.New(store, logger)
	paymentService := payment.New(store, s.clock, logger)
	return NewController(store, rosterService, s.ledger, historyService, paymentService, s.clock, logger, cfg)
}

// seedPlayer registers a player and checks them in for the test date
func (s *ControllerSuite) seedPlayer(handle model.Handle, skill int) {
	_, err := s.controller.roster.Create(s.ctx, roster.CreateInput{Handle: handle, SkillScore: skill})
	s.Require().NoError(err)
	_, err = s.ledger.CheckIn(s.ctx, testDate, handle, "", "")
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
}

func (s *ControllerSuite) TestPartialConfigGetsDefaults() {
	controller := s.newController(s.storage, Config{SquadSize: 2})

	s.Equal(2, controller.cfg.SquadSize)
	s.Equal(history.DefaultWindow, controller.cfg.HistoryWindow)
	s.Equal(selection.DefaultPolicy(), controller.cfg.Policy)
}

func (s *ControllerSuite) TestComputeRejectsUnknownHalf() {
	_, err := s.controller.Compute(s.ctx, testDate, "third")
	s.ErrorIs(err, model.ErrInvalidHalf)

	_, err = s.controller.Get(s.ctx, testDate, "third")
	s.ErrorIs(err, model.ErrInvalidHalf)

	s.ErrorIs(s.controller.Undo(s.ctx, testDate, "third"), model.ErrInvalidHalf)
}

func (s *ControllerSuite) TestComputeFirstHalf() {
	for _, h := range []model.Handle{"alice", "bob", "carol", "dave"} {
		s.seedPlayer(h, 5)
	}

	lineup, err := s.controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)
	s.Equal(testDate, lineup.Date)
	s.Equal(model.HalfFirst, lineup.Half)
	s.Equal(2, lineup.SquadSize)
	s.Len(lineup.SquadA, 2)
	s.Len(lineup.SquadB, 2)
	s.Len(lineup.Assigned(), 4)
	s.Equal(s.clock.Now(), lineup.ComputedAt)

	stored, err := s.controller.Get(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)
	s.Equal(lineup, stored)
}

func (s *ControllerSuite) TestComputePadsUnfilledSlots() {
	s.seedPlayer("alice", 5)

	lineup, err := s.controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)
	s.Len(lineup.SquadA, 2)
	s.Len(lineup.SquadB, 2)
	s.Len(lineup.Assigned(), 1)
}

func (s *ControllerSuite) TestComputeExcludesOptedOut() {
	for _, h := range []model.Handle{"alice", "bob", "carol"} {
		s.seedPlayer(h, 5)
	}
	s.Require().NoError(s.ledger.SetOptedOut(s.ctx, testDate, "bob", true))

	lineup, err := s.controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)
	s.False(lineup.Contains("bob"))
	s.Len(lineup.Assigned(), 2)
}

func (s *ControllerSuite) TestComputeCapsAdmissionAtCapacity() {
	// Squad size 2 means a half admits four; the fifth through the
	// gate sits out
	for _, h := range []model.Handle{"p1", "p2", "p3", "p4", "p5"} {
		s.seedPlayer(h, 5)
	}

	lineup, err := s.controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)
	s.Len(lineup.Assigned(), 4)
	s.False(lineup.Contains("p5"))
}

func (s *ControllerSuite) TestSecondHalfRotatesBenchedPlayersIn() {
	for _, h := range []model.Handle{"p1", "p2", "p3", "p4", "p5", "p6"} {
		s.seedPlayer(h, 5)
	}

	first, err := s.controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)
	s.False(first.Contains("p5"))
	s.False(first.Contains("p6"))

	second, err := s.controller.Compute(s.ctx, testDate, model.HalfSecond)
	s.Require().NoError(err)
	s.True(second.Contains("p5"))
	s.True(second.Contains("p6"))
}

func (s *ControllerSuite) TestSecondHalfWithoutFirstLineup() {
	// No first-half lineup stored: everyone counts as benched and the
	// second half computes standalone
	for _, h := range []model.Handle{"alice", "bob"} {
		s.seedPlayer(h, 5)
	}

	lineup, err := s.controller.Compute(s.ctx, testDate, model.HalfSecond)
	s.Require().NoError(err)
	s.Len(lineup.Assigned(), 2)
}

func (s *ControllerSuite) TestRecomputeIsIdempotent() {
	for _, h := range []model.Handle{"alice", "bob", "carol", "dave"} {
		s.seedPlayer(h, 5)
	}

	first, err := s.controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)
	second, err := s.controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *ControllerSuite) TestUndoRemovesStoredLineup() {
	s.seedPlayer("alice", 5)
	_, err := s.controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.Undo(s.ctx, testDate, model.HalfFirst))

	_, err = s.controller.Get(s.ctx, testDate, model.HalfFirst)
	s.ErrorIs(err, model.ErrLineupNotFound)
}

func (s *ControllerSuite) TestGetMissingLineup() {
	_, err := s.controller.Get(s.ctx, testDate, model.HalfFirst)
	s.ErrorIs(err, model.ErrLineupNotFound)
}

func (s *ControllerSuite) TestComputeSurfacesRosterFailure() {
	controller := s.newController(s.storage, Config{SquadSize: 2})
	controller.roster = roster.New(&failingStorage{Storage: s.storage}, s.clock, testutil.NopLogger())

	_, err := controller.Compute(s.ctx, testDate, model.HalfFirst)
	s.ErrorIs(err, model.ErrRosterUnavailable)

	_, getErr := s.storage.GetLineup(s.ctx, testDate, model.HalfFirst)
	s.ErrorIs(getErr, model.ErrLineupNotFound)
}

// failingStorage simulates a player directory outage
type failingStorage struct {
	*memory.Storage
}

func (f *failingStorage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return nil, errors.New("directory offline")
}
