package formats

import (
	"fmt"

	"github.com/mcoot/golfscore/internal/model"
)

// Options configures an Engine
type Options struct {
	Nassau   NassauOptions
	Observer SixPointObserver
}

// EngineInterface defines the format recompute contract
type EngineInterface interface {
	Compute(format model.Format, players []model.Player, state *model.RoundState, teams *model.Teams) (any, error)
	ComputeAll(state *model.RoundState) model.FormatResults
}

// Engine dispatches to the individual format engines. Every call replays the
// round from the first hole; the engine holds no state between calls.
type Engine struct {
	nassau   NassauOptions
	observer SixPointObserver
}

var _ EngineInterface = (*Engine)(nil)

// NewEngine creates a new format engine
func NewEngine(opts Options) *Engine {
	return &Engine{nassau: opts.Nassau, observer: opts.Observer}
}

// Compute returns the result of one format. Teams falls back to the round's
// teams when nil. A configuration the format cannot be played with produces
// an inapplicable result rather than an error.
func (e *Engine) Compute(format model.Format, players []model.Player, state *model.RoundState, teams *model.Teams) (any, error) {
	if teams == nil {
		teams = state.Teams
	}
	switch format {
	case model.FormatMatchPlay:
		return MatchPlay(players, state), nil
	case model.FormatSkins:
		return Skins(players, state), nil
	case model.FormatNassau:
		return Nassau(players, state, e.nassau), nil
	case model.FormatSixPoint:
		return SixPoint(players, state, e.observer), nil
	case model.FormatFourball:
		return Fourball(players, state, teams), nil
	case model.FormatFoursomes:
		return Foursomes(players, state, teams), nil
	case model.FormatScramble:
		return Scramble(players, state, teams), nil
	}
	return nil, fmt.Errorf("%w: %q", model.ErrUnknownFormat, format)
}

// ComputeAll recomputes every format selected for the round
func (e *Engine) ComputeAll(state *model.RoundState) model.FormatResults {
	var results model.FormatResults
	for _, f := range state.Formats {
		switch f {
		case model.FormatMatchPlay:
			r := MatchPlay(state.Players, state)
			results.MatchPlay = &r
		case model.FormatSkins:
			r := Skins(state.Players, state)
			results.Skins = &r
		case model.FormatNassau:
			r := Nassau(state.Players, state, e.nassau)
			results.Nassau = &r
		case model.FormatSixPoint:
			r := SixPoint(state.Players, state, e.observer)
			results.SixPoint = &r
		case model.FormatFourball:
			r := Fourball(state.Players, state, state.Teams)
			results.Fourball = &r
		case model.FormatFoursomes:
			r := Foursomes(state.Players, state, state.Teams)
			results.Foursomes = &r
		case model.FormatScramble:
			r := Scramble(state.Players, state, state.Teams)
			results.Scramble = &r
		}
	}
	return results
}
