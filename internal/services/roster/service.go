package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/clock"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage"
)

// Service manages the club's player directory. The mutex serializes
// the read-modify-write sequences in Create and Update against each
// other; reads go straight to storage.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
	mu      sync.Mutex
}

// New creates a new roster service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// CreateInput holds the fields for registering a player
type CreateInput struct {
	Handle      model.Handle
	DisplayName string
	SkillScore  int
}

// Create registers a new player. Handles are unique
// case-insensitively.
func (s *Service) Create(ctx context.Context, input CreateInput) (*model.Player, error) {
	if err := model.ValidateHandle(input.Handle); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.storage.GetPlayer(ctx, input.Handle)
	if err == nil {
		return nil, model.ErrPlayerExists
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = strings.TrimSpace(string(input.Handle))
	}

	player := &model.Player{
		Handle:      input.Handle.Key(),
		DisplayName: displayName,
		SkillScore:  input.SkillScore,
		Active:      true,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		slog.String("handle", string(player.Handle)),
		slog.Int("skill", player.SkillScore),
	)
	return player, nil
}

// Get returns a player by handle
func (s *Service) Get(ctx context.Context, handle model.Handle) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, handle)
}

// UpdateInput holds the optional fields of a player update;
// nil fields are left unchanged
type UpdateInput struct {
	DisplayName *string
	SkillScore  *int
	Active      *bool
}

// Update applies a partial update to a player
func (s *Service) Update(ctx context.Context, handle model.Handle, input UpdateInput) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.storage.GetPlayer(ctx, handle)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		player.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.SkillScore != nil {
		player.SkillScore = *input.SkillScore
	}
	if input.Active != nil {
		player.Active = *input.Active
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Deactivate retires a player from the active roster without
// deleting their history
func (s *Service) Deactivate(ctx context.Context, handle model.Handle) error {
	inactive := false
	_, err := s.Update(ctx, handle, UpdateInput{Active: &inactive})
	return err
}

// Delete removes a player record entirely
func (s *Service) Delete(ctx context.Context, handle model.Handle) error {
	if _, err := s.storage.GetPlayer(ctx, handle); err != nil {
		return err
	}
	return s.storage.DeletePlayer(ctx, handle)
}

// List returns every registered player ordered by handle
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// ActivePlayers returns the active roster. This is the directory
// read the lineup computation depends on; a storage failure here is
// surfaced as ErrRosterUnavailable by the caller.
func (s *Service) ActivePlayers(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}

	active := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}
