package formats

import "github.com/mcoot/golfscore/internal/model"

// MatchPlayPlayers is the roster size of a singles match
const MatchPlayPlayers = 2

// MatchPlay is a singles match decided hole by hole on gross score. Holes
// where either player has no score are not played.
func MatchPlay(players []model.Player, state *model.RoundState) model.MatchPlayResult {
	if len(players) != MatchPlayPlayers {
		return model.MatchPlayResult{}
	}
	result := model.MatchPlayResult{
		Applicable: true,
		Players:    [2]string{players[0].Name, players[1].Name},
		Holes:      []model.HoleOutcome{},
	}

	for i := 0; i < holesThroughCurrent(state); i++ {
		a := state.Score(result.Players[0], i)
		b := state.Score(result.Players[1], i)
		if !a.HasGross() || !b.HasGross() {
			continue
		}
		outcome := model.HoleOutcome{Hole: i + 1}
		switch {
		case *a.Gross < *b.Gross:
			result.HolesWon[0]++
			outcome.Winner = result.Players[0]
		case *b.Gross < *a.Gross:
			result.HolesWon[1]++
			outcome.Winner = result.Players[1]
		}
		result.HolesPlayed++
		result.Holes = append(result.Holes, outcome)
	}
	return result
}
