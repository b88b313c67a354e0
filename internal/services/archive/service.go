package archive

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/clock"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/storage"
)

// Service archives point-in-time copies of panel state so a session
// can be reviewed or restored later
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new archive service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Save stores a snapshot of a panel's payload and returns its ref
func (s *Service) Save(ctx context.Context, panel string, payload json.RawMessage) (*model.Snapshot, error) {
	if !model.ValidPanel(panel) {
		return nil, model.ErrInvalidPanel
	}
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}

	snapshot := &model.Snapshot{
		Panel:   panel,
		Ref:     uuid.NewString(),
		SavedAt: s.clock.Now(),
		Payload: payload,
	}
	if err := s.storage.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	s.logger.Info("snapshot saved",
		slog.String("panel", panel),
		slog.String("ref", snapshot.Ref),
	)
	return snapshot, nil
}

// List returns a panel's snapshots, newest first
func (s *Service) List(ctx context.Context, panel string) ([]*model.Snapshot, error) {
	if !model.ValidPanel(panel) {
		return nil, model.ErrInvalidPanel
	}
	return s.storage.ListSnapshots(ctx, panel)
}

// Load retrieves a snapshot by panel and ref
func (s *Service) Load(ctx context.Context, panel, ref string) (*model.Snapshot, error) {
	if !model.ValidPanel(panel) {
		return nil, model.ErrInvalidPanel
	}
	return s.storage.GetSnapshot(ctx, panel, ref)
}
