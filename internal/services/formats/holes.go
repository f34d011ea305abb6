package formats

import "github.com/mcoot/golfscore/internal/model"

// completedHoles returns how many holes are fully completed, excluding the
// hole currently being played
func completedHoles(state *model.RoundState) int {
	return clampHoles(state, state.CurrentHole-1)
}

// holesThroughCurrent returns how many holes are in play, including the
// hole currently being played
func holesThroughCurrent(state *model.RoundState) int {
	return clampHoles(state, state.CurrentHole)
}

func clampHoles(state *model.RoundState, n int) int {
	if n < 0 {
		return 0
	}
	if total := state.HoleCount(); n > total {
		return total
	}
	return n
}

// lowestUnique returns the name holding the strictly lowest value, or "" on a tie
func lowestUnique(names []string, values map[string]int) string {
	winner := ""
	best := 0
	tied := false
	for _, name := range names {
		v, ok := values[name]
		if !ok {
			continue
		}
		switch {
		case winner == "" || v < best:
			winner, best, tied = name, v, false
		case v == best:
			tied = true
		}
	}
	if tied {
		return ""
	}
	return winner
}
