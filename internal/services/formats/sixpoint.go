package formats

import (
	"sort"

	"github.com/mcoot/golfscore/internal/model"
)

// SixPointPlayers is the exact roster size the six point system is played with
const SixPointPlayers = 3

// SixPointObserver receives a trace of a six point computation
type SixPointObserver interface {
	HoleAllocated(hole model.SixPointHole)
	Normalized(raw map[string]int, reduction int)
}

type nopObserver struct{}

func (nopObserver) HoleAllocated(model.SixPointHole) {}
func (nopObserver) Normalized(map[string]int, int) {}

// SixPoint replays the six point system over every hole in play on which all
// three players have a net score, then reduces every total by the lowest so
// the trailing player always reads zero. Any roster other than three players
// yields an inapplicable result.
func SixPoint(players []model.Player, state *model.RoundState, observer SixPointObserver) model.SixPointResult {
	if len(players) != SixPointPlayers {
		return model.SixPointResult{}
	}
	if observer == nil {
		observer = nopObserver{}
	}

	names := model.PlayerNames(players)
	raw := make(map[string]int, len(names))
	for _, name := range names {
		raw[name] = 0
	}
	result := model.SixPointResult{Applicable: true, Holes: []model.SixPointHole{}}

	for i := 0; i < holesThroughCurrent(state); i++ {
		nets := make(map[string]int, len(names))
		for _, name := range names {
			if s := state.Score(name, i); s.HasNet() {
				nets[name] = *s.Net
			}
		}
		if len(nets) != SixPointPlayers {
			continue
		}

		hole := allocateSixPoint(i+1, names, nets)
		for name, pts := range hole.Points {
			raw[name] += pts
		}
		result.Holes = append(result.Holes, hole)
		observer.HoleAllocated(hole)
	}

	reduction := raw[names[0]]
	for _, name := range names[1:] {
		reduction = min(reduction, raw[name])
	}
	result.Raw = raw
	result.Reduction = reduction
	result.Totals = make(map[string]int, len(names))
	for name, v := range raw {
		result.Totals[name] = v - reduction
	}
	observer.Normalized(raw, reduction)
	return result
}

// allocateSixPoint ranks three net scores and hands out the matching pattern
func allocateSixPoint(hole int, names []string, nets map[string]int) model.SixPointHole {
	ranked := make([]string, len(names))
	copy(ranked, names)
	sort.SliceStable(ranked, func(i, j int) bool { return nets[ranked[i]] < nets[ranked[j]] })

	first, second, third := nets[ranked[0]], nets[ranked[1]], nets[ranked[2]]

	var pattern model.SixPointPattern
	var alloc [3]int
	switch {
	case first == second && second == third:
		pattern, alloc = model.SixPointAllTied, [3]int{2, 2, 2}
	case first == second:
		pattern, alloc = model.SixPointTopTied, [3]int{3, 3, 0}
	case second == third:
		pattern, alloc = model.SixPointBottomTied, [3]int{3, 1, 1}
	default:
		pattern, alloc = model.SixPointAllDistinct, [3]int{4, 2, 0}
	}

	points := make(map[string]int, 3)
	for rank, name := range ranked {
		points[name] = alloc[rank]
	}
	return model.SixPointHole{Hole: hole, Pattern: pattern, Points: points}
}
