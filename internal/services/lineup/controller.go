package lineup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/clock"
	"github.com/tesouraclub/tesoura-go/internal/model"
	"github.com/tesouraclub/tesoura-go/internal/services/balance"
	"github.com/tesouraclub/tesoura-go/internal/services/history"
	"github.com/tesouraclub/tesoura-go/internal/services/ledger"
	"github.com/tesouraclub/tesoura-go/internal/services/payment"
	"github.com/tesouraclub/tesoura-go/internal/services/roster"
	"github.com/tesouraclub/tesoura-go/internal/services/selection"
	"github.com/tesouraclub/tesoura-go/internal/storage"
)

// Config holds the lineup computation parameters
type Config struct {
	// SquadSize is the number of slots per squad; a half admits twice this
	SquadSize int
	// HistoryWindow is how many past sessions absence counting examines
	HistoryWindow int
	// Policy holds the second-half priority weights
	Policy selection.Policy
}

// DefaultConfig returns the club's standard parameters
func DefaultConfig() Config {
	return Config{
		SquadSize:     balance.DefaultSquadSize,
		HistoryWindow: history.DefaultWindow,
		Policy:        selection.DefaultPolicy(),
	}
}

// Controller computes, stores, and retrieves the two squads for each
// half of a session. Computation is a pure function of the attendance
// snapshot and the collaborator outputs; storing it fully replaces
// any prior lineup for the (date, half), so re-runs with unchanged
// inputs are idempotent.
type Controller struct {
	storage storage.Storage
	roster  *roster.Service
	ledger  *ledger.Service
	history *history.Service
	payment *payment.Service
	clock   clock.Clock
	logger  *slog.Logger
	cfg     Config
}

// NewController creates a new lineup controller
func NewController(
	store storage.Storage,
	rosterService *roster.Service,
	ledgerService *ledger.Service,
	historyService *history.Service,
	paymentService *payment.Service,
	clk clock.Clock,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	if cfg.SquadSize <= 0 {
		cfg.SquadSize = balance.DefaultSquadSize
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = history.DefaultWindow
	}
	if cfg.Policy == (selection.Policy{}) {
		cfg.Policy = selection.DefaultPolicy()
	}
	return &Controller{
		storage: store,
		roster:  rosterService,
		ledger:  ledgerService,
		history: historyService,
		payment: paymentService,
		clock:   clk,
		logger:  logger,
		cfg:     cfg,
	}
}

// Compute selects the admitted players for the half, splits them into
// balanced squads, and replaces the stored lineup for (date, half).
// Collaborator failures abort the computation with the cause wrapped;
// the previously stored lineup is left untouched on any error.
func (c *Controller) Compute(ctx context.Context, date model.MatchDate, half model.Half) (*model.Lineup, error) {
	if _, err := model.ParseHalf(string(half)); err != nil {
		return nil, err
	}

	players, err := c.roster.ActivePlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrRosterUnavailable, err)
	}
	playerByHandle := make(map[model.Handle]*model.Player, len(players))
	for _, p := range players {
		playerByHandle[p.Handle.Key()] = p
	}

	records, err := c.ledger.List(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("reading attendance: %w", err)
	}

	var eligible []model.AttendanceRecord
	for _, r := range records {
		if !r.OptedOut {
			eligible = append(eligible, r)
		}
	}

	handles := make([]model.Handle, len(eligible))
	for i, r := range eligible {
		handles[i] = r.Handle.Key()
	}

	stats, err := c.history.Stats(ctx, date, c.cfg.HistoryWindow, handles)
	if err != nil {
		return nil, fmt.Errorf("history lookup: %w", err)
	}

	statuses, err := c.payment.StatusMap(ctx, date, handles)
	if err != nil {
		return nil, fmt.Errorf("payment lookup: %w", err)
	}

	inFirstHalf, err := c.firstHalfMembership(ctx, date, half)
	if err != nil {
		return nil, err
	}

	candidates := make([]selection.Candidate, len(eligible))
	for i, r := range eligible {
		key := r.Handle.Key()
		cand := selection.Candidate{
			Handle:                   key,
			Seq:                      r.Seq,
			LeftEarly:                r.LeftEarly,
			AttendedPrevious:         stats[key].AttendedPrevious,
			PlayedBothHalvesPrevious: stats[key].PlayedBothHalvesPrevious,
			MissedCount:              stats[key].MissedCount,
			Overdue:                  statuses[key] == model.PaymentOverdue,
			InFirstHalf:              inFirstHalf[key],
		}
		if p, ok := playerByHandle[key]; ok {
			cand.CreatedAt = p.CreatedAt
		}
		candidates[i] = cand
	}

	admitted, err := selection.Select(half, candidates, 2*c.cfg.SquadSize, c.cfg.Policy)
	if err != nil {
		return nil, err
	}

	admittedHandles := make([]model.Handle, len(admitted))
	skills := make(map[model.Handle]int, len(admitted))
	for i, cand := range admitted {
		admittedHandles[i] = cand.Handle
		if p, ok := playerByHandle[cand.Handle]; ok {
			skills[cand.Handle] = p.SkillScore
		}
	}

	squadA, squadB := balance.Split(admittedHandles, skills, c.cfg.SquadSize)

	lineup := &model.Lineup{
		Date:       date,
		Half:       half,
		SquadSize:  c.cfg.SquadSize,
		SquadA:     squadA,
		SquadB:     squadB,
		ComputedAt: c.clock.Now(),
	}
	if err := c.storage.SaveLineup(ctx, lineup); err != nil {
		return nil, fmt.Errorf("storing lineup: %w", err)
	}

	c.logger.Info("lineup computed",
		slog.String("date", string(date)),
		slog.String("half", string(half)),
		slog.Int("eligible", len(eligible)),
		slog.Int("admitted", len(admitted)),
	)

	return lineup, nil
}

// firstHalfMembership returns who is assigned in the first-half
// lineup; only second-half selection needs it. A missing first-half
// lineup counts everyone as benched, which allows recomputing the
// second half standalone.
func (c *Controller) firstHalfMembership(ctx context.Context, date model.MatchDate, half model.Half) (map[model.Handle]bool, error) {
	if half != model.HalfSecond {
		return nil, nil
	}

	first, err := c.storage.GetLineup(ctx, date, model.HalfFirst)
	if errors.Is(err, model.ErrLineupNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading first-half lineup: %w", err)
	}

	members := make(map[model.Handle]bool)
	for _, handle := range first.Assigned() {
		members[handle.Key()] = true
	}
	return members, nil
}

// Get returns the stored lineup for (date, half)
func (c *Controller) Get(ctx context.Context, date model.MatchDate, half model.Half) (*model.Lineup, error) {
	if _, err := model.ParseHalf(string(half)); err != nil {
		return nil, err
	}
	return c.storage.GetLineup(ctx, date, half)
}

// Undo removes the stored lineup for (date, half) without replacement
func (c *Controller) Undo(ctx context.Context, date model.MatchDate, half model.Half) error {
	if _, err := model.ParseHalf(string(half)); err != nil {
		return err
	}
	if err := c.storage.DeleteLineup(ctx, date, half); err != nil {
		return err
	}

	c.logger.Info("lineup cleared",
		slog.String("date", string(date)),
		slog.String("half", string(half)),
	)
	return nil
}
