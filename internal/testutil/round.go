package testutil

import (
	"time"

	"github.com/mcoot/golfscore/internal/model"
)

// FixedTime is the clock reading used by test rounds
var FixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// NewRound creates an empty round on the park course for the named players
func NewRound(names ...string) *model.RoundState {
	return model.NewRoundState("ROUND1", ParkCourse(), Players(names...), nil, nil, FixedTime)
}

// SetScore enters a gross and net score for a player on a 1-based hole
func SetScore(state *model.RoundState, name string, hole, gross, net int) {
	state.Scores[name][hole-1] = model.NewHoleScore(gross, net, 0)
}

// SetGross enters a score for a scratch player, where net equals gross
func SetGross(state *model.RoundState, name string, hole, gross int) {
	SetScore(state, name, hole, gross, gross)
}

// SetHole enters scratch scores for several players on one hole. Scores are
// matched to names by position.
func SetHole(state *model.RoundState, hole int, names []string, gross ...int) {
	for i, g := range gross {
		SetGross(state, names[i], hole, g)
	}
}
