package formats

import "github.com/mcoot/golfscore/internal/model"

// teamPlayers is the roster size every team format needs
const teamPlayers = 4

func teamsApplicable(players []model.Player, teams *model.Teams) bool {
	return len(players) == teamPlayers && teams != nil && teams.Validate(players) == nil
}

func teamStanding(t model.Team) model.TeamStanding {
	return model.TeamStanding{Name: t.Name, Players: t.Players}
}

// bestNet returns the lower net score of the team's players who have one
func bestNet(state *model.RoundState, t model.Team, hole int) (int, bool) {
	best, found := 0, false
	for _, name := range t.Players {
		s := state.Score(name, hole)
		if !s.HasNet() {
			continue
		}
		if !found || *s.Net < best {
			best, found = *s.Net, true
		}
	}
	return best, found
}

// bestGross returns the lower gross score of the team's players who have one
func bestGross(state *model.RoundState, t model.Team, hole int) (int, bool) {
	best, found := 0, false
	for _, name := range t.Players {
		s := state.Score(name, hole)
		if !s.HasGross() {
			continue
		}
		if !found || *s.Gross < best {
			best, found = *s.Gross, true
		}
	}
	return best, found
}

// nominatedNet returns the net score of the player carrying the team ball
func nominatedNet(state *model.RoundState, t model.Team, hole int) (int, bool) {
	s := state.Score(t.FoursomesBall(), hole)
	if !s.HasNet() {
		return 0, false
	}
	return *s.Net, true
}

type teamBall func(state *model.RoundState, t model.Team, hole int) (int, bool)

// teamMatch plays a hole-by-hole match between the two teams. Holes where
// either side has no ball are not played.
func teamMatch(players []model.Player, state *model.RoundState, teams *model.Teams, ball teamBall) model.TeamMatchResult {
	if !teamsApplicable(players, teams) {
		return model.TeamMatchResult{}
	}
	t := teams.WithDefaults()
	result := model.TeamMatchResult{
		Applicable: true,
		TeamA:      teamStanding(t.TeamA),
		TeamB:      teamStanding(t.TeamB),
		Holes:      []model.HoleOutcome{},
	}

	for i := 0; i < holesThroughCurrent(state); i++ {
		a, okA := ball(state, t.TeamA, i)
		b, okB := ball(state, t.TeamB, i)
		if !okA || !okB {
			continue
		}
		outcome := model.HoleOutcome{Hole: i + 1}
		switch {
		case a < b:
			result.TeamA.HolesWon++
			outcome.Winner = t.TeamA.Name
		case b < a:
			result.TeamB.HolesWon++
			outcome.Winner = t.TeamB.Name
		}
		result.HolesPlayed++
		result.Holes = append(result.Holes, outcome)
	}
	return result
}

// Fourball is better-ball match play: each team plays the lower net score of its pair
func Fourball(players []model.Player, state *model.RoundState, teams *model.Teams) model.TeamMatchResult {
	return teamMatch(players, state, teams, bestNet)
}

// Foursomes is played as match play with one nominated player's net score
// standing for the team. This does not model a shared alternate-shot ball.
func Foursomes(players []model.Player, state *model.RoundState, teams *model.Teams) model.TeamMatchResult {
	return teamMatch(players, state, teams, nominatedNet)
}

// Scramble is stroke play on each team's best gross score per hole
func Scramble(players []model.Player, state *model.RoundState, teams *model.Teams) model.TeamStrokeResult {
	if !teamsApplicable(players, teams) {
		return model.TeamStrokeResult{}
	}
	t := teams.WithDefaults()
	result := model.TeamStrokeResult{
		Applicable: true,
		TeamA:      model.TeamStrokeStanding{Name: t.TeamA.Name, Players: t.TeamA.Players},
		TeamB:      model.TeamStrokeStanding{Name: t.TeamB.Name, Players: t.TeamB.Players},
	}

	for i := 0; i < holesThroughCurrent(state); i++ {
		a, okA := bestGross(state, t.TeamA, i)
		b, okB := bestGross(state, t.TeamB, i)
		if !okA || !okB {
			continue
		}
		result.TeamA.TotalScore += a
		result.TeamB.TotalScore += b
		result.HolesPlayed++
	}
	return result
}
