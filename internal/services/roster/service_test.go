package roster

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/mocks"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage/memory"
	"github.com/tesouraclub/tesoura-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreate() {
	player, err := s.service.Create(s.ctx, CreateInput{Handle: "Alice", DisplayName: "Alice A", SkillScore: 7})
	s.Require().NoError(err)
	s.Equal(model.Handle("alice"), player.Handle)
	s.Equal("Alice A", player.DisplayName)
	s.Equal(7, player.SkillScore)
	s.True(player.Active)
	s.Equal(s.clock.Now(), player.CreatedAt)
}

func (s *ServiceSuite) TestCreateDefaultsDisplayName() {
	player, err := s.service.Create(s.ctx, CreateInput{Handle: "bob"})
	s.Require().NoError(err)
	s.Equal("bob", player.DisplayName)
}

func (s *ServiceSuite) TestCreateRejectsInvalidHandle() {
	_, err := s.service.Create(s.ctx, CreateInput{Handle: "two words"})
	s.ErrorIs(err, model.ErrInvalidHandle)

	_, err = s.service.Create(s.ctx, CreateInput{Handle: ""})
	s.ErrorIs(err, model.ErrInvalidHandle)
}

func (s *ServiceSuite) TestCreateDuplicateCaseInsensitive() {
	_, err := s.service.Create(s.ctx, CreateInput{Handle: "alice"})
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, CreateInput{Handle: "ALICE"})
	s.ErrorIs(err, model.ErrPlayerExists)
}

func (s *ServiceSuite) TestGet() {
	_, err := s.service.Create(s.ctx, CreateInput{Handle: "alice", SkillScore: 5})
	s.Require().NoError(err)

	player, err := s.service.Get(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(model.Handle("alice"), player.Handle)

	_, err = s.service.Get(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpdatePartialFields() {
	_, err := s.service.Create(s.ctx, CreateInput{Handle: "alice", DisplayName: "Alice", SkillScore: 5})
	s.Require().NoError(err)

	newSkill := 8
	player, err := s.service.Update(s.ctx, "alice", UpdateInput{SkillScore: &newSkill})
	s.Require().NoError(err)
	s.Equal(8, player.SkillScore)
	s.Equal("Alice", player.DisplayName)
	s.True(player.Active)
}

func (s *ServiceSuite) TestConcurrentCreatesAdmitExactlyOne() {
	const n = 20

	var wg sync.WaitGroup
	results := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.service.Create(s.ctx, CreateInput{Handle: "alice", SkillScore: 5})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range results {
		if err == nil {
			created++
		} else {
			s.ErrorIs(err, model.ErrPlayerExists)
		}
	}
	s.Equal(1, created)
}

func (s *ServiceSuite) TestConcurrentUpdatesKeepBothFields() {
	_, err := s.service.Create(s.ctx, CreateInput{Handle: "alice", SkillScore: 5})
	s.Require().NoError(err)

	name := "Alice Atkins"
	skill := 8

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := s.service.Update(s.ctx, "alice", UpdateInput{DisplayName: &name})
		s.NoError(err)
	}()
	go func() {
		defer wg.Done()
		_, err := s.service.Update(s.ctx, "alice", UpdateInput{SkillScore: &skill})
		s.NoError(err)
	}()
	wg.Wait()

	player, err := s.service.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("Alice Atkins", player.DisplayName)
	s.Equal(8, player.SkillScore)
}

func (s *ServiceSuite) TestUpdateUnknownPlayer() {
	active := false
	_, err := s.service.Update(s.ctx, "ghost", UpdateInput{Active: &active})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeactivate() {
	_, err := s.service.Create(s.ctx, CreateInput{Handle: "alice"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Deactivate(s.ctx, "alice"))

	player, err := s.service.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.False(player.Active)
}

func (s *ServiceSuite) TestDelete() {
	_, err := s.service.Create(s.ctx, CreateInput{Handle: "alice"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, "alice"))

	_, err = s.service.Get(s.ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	s.ErrorIs(s.service.Delete(s.ctx, "alice"), model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestListOrderedByHandle() {
	for _, h := range []model.Handle{"carol", "alice", "bob"} {
		_, err := s.service.Create(s.ctx, CreateInput{Handle: h})
		s.Require().NoError(err)
	}

	players, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.Handle("alice"), players[0].Handle)
	s.Equal(model.Handle("bob"), players[1].Handle)
	s.Equal(model.Handle("carol"), players[2].Handle)
}

func (s *ServiceSuite) TestActivePlayersFiltersRetired() {
	_, err := s.service.Create(s.ctx, CreateInput{Handle: "alice"})
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, CreateInput{Handle: "bob"})
	s.Require().NoError(err)
	s.Require().NoError(s.service.Deactivate(s.ctx, "bob"))

	active, err := s.service.ActivePlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(model.Handle("alice"), active[0].Handle)
}
