package formats

import "github.com/mcoot/golfscore/internal/model"

// Skins replays a skins game over every completed hole. The hole currently
// being played is never counted. Holes nobody has scored are skipped without
// touching the carryover.
func Skins(players []model.Player, state *model.RoundState) model.SkinsResult {
	names := model.PlayerNames(players)
	result := model.SkinsResult{
		Skins:     make(map[string]int, len(names)),
		Carryover: 1,
		Holes:     []model.SkinsHole{},
	}
	for _, name := range names {
		result.Skins[name] = 0
	}

	for i := 0; i < completedHoles(state); i++ {
		gross := make(map[string]int, len(names))
		for _, name := range names {
			if s := state.Score(name, i); s.HasGross() {
				gross[name] = *s.Gross
			}
		}
		if len(gross) == 0 {
			continue
		}

		hole := model.SkinsHole{Hole: i + 1, Value: result.Carryover}
		if winner := lowestUnique(names, gross); winner != "" {
			hole.Winner = winner
			result.Skins[winner] += result.Carryover
			result.Carryover = 1
		} else {
			hole.Carried = true
			result.Carryover++
		}
		result.Holes = append(result.Holes, hole)
	}
	return result
}
