package round

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/mcoot/golfscore/internal/dependencies/clock"
	"github.com/mcoot/golfscore/internal/dependencies/random"
	"github.com/mcoot/golfscore/internal/metrics"
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/course"
	"github.com/mcoot/golfscore/internal/services/formats"
	"github.com/mcoot/golfscore/internal/services/scoring"
	"github.com/mcoot/golfscore/internal/services/status"
	"github.com/mcoot/golfscore/internal/storage"
)

const (
	// RoundIDLength is the length of generated round IDs
	RoundIDLength = 8
	// RoundIDAlphabet excludes characters that are easily confused when read aloud
	RoundIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	maxIDAttempts = 10
	lockStripes   = 64
)

// ErrIDExhausted is returned when no unused round ID could be generated
var ErrIDExhausted = errors.New("could not generate a unique round id")

// Controller owns the score grid of every round in progress and drives it
// from the first tee to settlement. Changes to one round are applied one at
// a time; each is a load, change and save of the whole round.
type Controller struct {
	locks [lockStripes]sync.Mutex

	storage    storage.Storage
	courses    course.ServiceInterface
	scoring    scoring.ServiceInterface
	engine     formats.EngineInterface
	summarizer status.SummarizerInterface
	metrics    metrics.Recorder
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
}

// NewController creates a new round Controller
func NewController(
	storage storage.Storage,
	courses course.ServiceInterface,
	scoring scoring.ServiceInterface,
	engine formats.EngineInterface,
	summarizer status.SummarizerInterface,
	recorder metrics.Recorder,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Controller{
		storage:    storage,
		courses:    courses,
		scoring:    scoring,
		engine:     engine,
		summarizer: summarizer,
		metrics:    recorder,
		clock:      clock,
		random:     random,
		logger:     logger,
	}
}

// StartRound validates the setup and creates a round on the first hole
func (c *Controller) StartRound(ctx context.Context, setup Setup) (*model.RoundState, error) {
	setup, err := setup.normalize()
	if err != nil {
		return nil, err
	}

	crs, err := c.courses.Get(ctx, setup.CourseID)
	if err != nil {
		return nil, err
	}

	id, err := c.newRoundID(ctx)
	if err != nil {
		return nil, err
	}

	state := model.NewRoundState(id, *crs, setup.Players, setup.Teams, setup.Formats, c.clock.Now())
	state.Results = c.engine.ComputeAll(state)

	if err := c.storage.SaveRound(ctx, state); err != nil {
		c.logger.Error("failed to save round",
			slog.String("round_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.metrics.RoundStarted(len(setup.Players), setup.Formats)
	c.logger.Info("round started",
		slog.String("round_id", string(id)),
		slog.String("course_id", crs.ID),
		slog.Int("player_count", len(setup.Players)),
		slog.Any("formats", setup.Formats),
	)

	return state, nil
}

func (c *Controller) newRoundID(ctx context.Context) (model.RoundID, error) {
	for range maxIDAttempts {
		id := model.RoundID(c.random.String(RoundIDLength, RoundIDAlphabet))
		if id == "" {
			continue
		}
		exists, err := c.storage.RoundExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// lock holds the stripe guarding a round until the returned func is called
func (c *Controller) lock(id model.RoundID) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &c.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// GetRound retrieves a round by ID
func (c *Controller) GetRound(ctx context.Context, id model.RoundID) (*model.RoundState, error) {
	return c.storage.GetRound(ctx, id)
}

// loadActive retrieves a round that can still be changed
func (c *Controller) loadActive(ctx context.Context, id model.RoundID) (*model.RoundState, error) {
	state, err := c.storage.GetRound(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.IsComplete() {
		return nil, model.ErrRoundComplete
	}
	return state, nil
}

// RecordScore enters a player's gross score on the current hole
func (c *Controller) RecordScore(ctx context.Context, id model.RoundID, player string, gross int) (*model.RoundState, error) {
	defer c.lock(id)()

	state, err := c.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.IsFinished() {
		return nil, model.ErrInvalidHole
	}
	return c.enterScore(ctx, state, player, state.CurrentHole, gross)
}

// AmendScore changes a player's gross score on any hole already reached.
// Amending a hole behind the current one replays every format.
func (c *Controller) AmendScore(ctx context.Context, id model.RoundID, player string, hole, gross int) (*model.RoundState, error) {
	defer c.lock(id)()

	state, err := c.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if hole < 1 || hole > min(state.CurrentHole, state.HoleCount()) {
		c.metrics.ScoreRejected("invalid_hole")
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidHole, hole)
	}
	return c.enterScore(ctx, state, player, hole, gross)
}

func (c *Controller) enterScore(ctx context.Context, state *model.RoundState, name string, hole, gross int) (*model.RoundState, error) {
	if gross < 1 || gross > model.MaxGrossScore {
		c.metrics.ScoreRejected("invalid_gross")
		return nil, fmt.Errorf("%w: got %d", model.ErrInvalidGrossScore, gross)
	}
	player, ok := state.Player(name)
	if !ok {
		c.metrics.ScoreRejected("unknown_player")
		return nil, fmt.Errorf("%w: %s", model.ErrPlayerNotFound, name)
	}

	idx := hole - 1
	state.Scores[player.Name][idx] = c.scoring.ScoreHole(player, &state.Course, idx, gross)
	if hole < state.CurrentHole {
		state.Results = c.engine.ComputeAll(state)
	}
	state.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRound(ctx, state); err != nil {
		return nil, err
	}

	c.metrics.ScoreRecorded()
	c.logger.Info("score recorded",
		slog.String("round_id", string(state.ID)),
		slog.String("player", player.Name),
		slog.Int("hole", hole),
		slog.Int("gross", gross),
		slog.Int("net", *state.Scores[player.Name][idx].Net),
	)

	return state, nil
}

// ConfirmHole toggles confirmation of the current hole
func (c *Controller) ConfirmHole(ctx context.Context, id model.RoundID) (*model.RoundState, error) {
	defer c.lock(id)()

	state, err := c.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.IsFinished() {
		return nil, model.ErrInvalidHole
	}

	idx := state.CurrentHole - 1
	state.Confirmed[idx] = !state.Confirmed[idx]
	state.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRound(ctx, state); err != nil {
		return nil, err
	}

	c.logger.Info("hole confirmation changed",
		slog.String("round_id", string(id)),
		slog.Int("hole", state.CurrentHole),
		slog.Bool("confirmed", state.Confirmed[idx]),
	)
	return state, nil
}

// AdvanceHole moves play to the next hole and replays every format. Leaving
// the last hole finishes the round and settles it; the settlement is
// returned alongside the round in that case.
func (c *Controller) AdvanceHole(ctx context.Context, id model.RoundID) (*model.RoundState, *model.Settlement, error) {
	defer c.lock(id)()

	state, err := c.loadActive(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if state.CurrentHole >= state.HoleCount() {
		settlement, err := c.complete(ctx, state)
		if err != nil {
			return nil, nil, err
		}
		return state, settlement, nil
	}

	state.CurrentHole++
	state.Results = c.engine.ComputeAll(state)
	state.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRound(ctx, state); err != nil {
		return nil, nil, err
	}

	c.metrics.HoleAdvanced()
	c.logger.Info("hole advanced",
		slog.String("round_id", string(id)),
		slog.Int("current_hole", state.CurrentHole),
	)
	return state, nil, nil
}

// PreviousHole moves play back one hole
func (c *Controller) PreviousHole(ctx context.Context, id model.RoundID) (*model.RoundState, error) {
	defer c.lock(id)()

	state, err := c.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.CurrentHole <= 1 {
		return nil, model.ErrInvalidHole
	}

	state.CurrentHole--
	state.Results = c.engine.ComputeAll(state)
	state.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRound(ctx, state); err != nil {
		return nil, err
	}

	c.logger.Info("hole moved back",
		slog.String("round_id", string(id)),
		slog.Int("current_hole", state.CurrentHole),
	)
	return state, nil
}

// Status reports a line per selected format and every player's running totals
func (c *Controller) Status(ctx context.Context, id model.RoundID) ([]string, []model.PlayerTotal, error) {
	state, err := c.storage.GetRound(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	lines := c.summarizer.Summarize(state.Formats, state, state.Players, state.Teams)

	var sixPoint *model.SixPointResult
	if model.HasFormat(state.Formats, model.FormatSixPoint) {
		r := formats.SixPoint(state.Players, state, nil)
		sixPoint = &r
	}
	return lines, status.CumulativeTotals(state, state.Players, sixPoint), nil
}

// ComputeFormat replays one format over the round, whether or not it was
// selected when the round started
func (c *Controller) ComputeFormat(ctx context.Context, id model.RoundID, format model.Format) (any, error) {
	state, err := c.storage.GetRound(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.engine.Compute(format, state.Players, state, state.Teams)
}

// CompleteRound finishes the round wherever play has reached and stores its
// settlement. No further changes are accepted afterwards.
func (c *Controller) CompleteRound(ctx context.Context, id model.RoundID) (*model.Settlement, error) {
	defer c.lock(id)()

	state, err := c.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.complete(ctx, state)
}

func (c *Controller) complete(ctx context.Context, state *model.RoundState) (*model.Settlement, error) {
	now := c.clock.Now()

	state.CurrentHole = state.HoleCount() + 1
	state.Results = c.engine.ComputeAll(state)
	state.Status = model.RoundStatusComplete
	state.UpdatedAt = now

	settlement := &model.Settlement{
		RoundID:     state.ID,
		CourseID:    state.Course.ID,
		CourseName:  state.Course.Name,
		Players:     append([]model.Player(nil), state.Players...),
		Teams:       state.Teams,
		Formats:     append([]model.Format(nil), state.Formats...),
		Scores:      cloneScores(state.Scores),
		Totals:      status.ScorecardTotals(state),
		Results:     state.Results,
		StatusLines: status.Lines(state.Formats, state.Results, state, state.Players),
		Winners:     status.Winners(state.Formats, state.Results, state),
		CompletedAt: now,
	}

	if err := c.storage.SaveSettlement(ctx, settlement); err != nil {
		c.logger.Error("failed to save settlement",
			slog.String("round_id", string(state.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if err := c.storage.SaveRound(ctx, state); err != nil {
		return nil, err
	}

	c.metrics.RoundCompleted(now.Sub(state.CreatedAt).Seconds())
	c.logger.Info("round completed",
		slog.String("round_id", string(state.ID)),
		slog.Any("winners", settlement.Winners),
	)
	return settlement, nil
}

// GetSettlement retrieves the settlement of a completed round
func (c *Controller) GetSettlement(ctx context.Context, id model.RoundID) (*model.Settlement, error) {
	return c.storage.GetSettlement(ctx, id)
}

// AbandonRound deletes a round that has not been completed
func (c *Controller) AbandonRound(ctx context.Context, id model.RoundID) error {
	defer c.lock(id)()

	if _, err := c.loadActive(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteRound(ctx, id); err != nil {
		return err
	}

	c.metrics.RoundAbandoned()
	c.logger.Info("round abandoned", slog.String("round_id", string(id)))
	return nil
}

func cloneScores(scores map[string][]model.HoleScore) map[string][]model.HoleScore {
	out := make(map[string][]model.HoleScore, len(scores))
	for name, row := range scores {
		out[name] = append([]model.HoleScore(nil), row...)
	}
	return out
}

// Interface for dependency injection
type ControllerInterface interface {
	StartRound(ctx context.Context, setup Setup) (*model.RoundState, error)
	GetRound(ctx context.Context, id model.RoundID) (*model.RoundState, error)
	RecordScore(ctx context.Context, id model.RoundID, player string, gross int) (*model.RoundState, error)
	AmendScore(ctx context.Context, id model.RoundID, player string, hole, gross int) (*model.RoundState, error)
	ConfirmHole(ctx context.Context, id model.RoundID) (*model.RoundState, error)
	AdvanceHole(ctx context.Context, id model.RoundID) (*model.RoundState, *model.Settlement, error)
	PreviousHole(ctx context.Context, id model.RoundID) (*model.RoundState, error)
	Status(ctx context.Context, id model.RoundID) ([]string, []model.PlayerTotal, error)
	ComputeFormat(ctx context.Context, id model.RoundID, format model.Format) (any, error)
	CompleteRound(ctx context.Context, id model.RoundID) (*model.Settlement, error)
	GetSettlement(ctx context.Context, id model.RoundID) (*model.Settlement, error)
	AbandonRound(ctx context.Context, id model.RoundID) error
}

var _ ControllerInterface = (*Controller)(nil)
