package formats

import "github.com/mcoot/golfscore/internal/model"

// NassauOptions tunes when a Nassau segment is settled
type NassauOptions struct {
	// RequireComplete withholds a segment until every player has a score on
	// every hole of it. By default a segment is settled as soon as play moves
	// past its last hole, using whatever scores have been entered.
	RequireComplete bool
}

// Nassau evaluates the front, back and overall bets. Each segment is worth
// one point to its outright winner and nothing to anyone on a tie.
func Nassau(players []model.Player, state *model.RoundState, opts NassauOptions) model.NassauResult {
	names := model.PlayerNames(players)
	holes := state.HoleCount()
	half := holes / 2

	result := model.NassauResult{Points: make(map[string]model.NassauPoints, len(names))}
	for _, name := range names {
		result.Points[name] = model.NassauPoints{}
	}

	if state.CurrentHole > half {
		result.Front = evaluateSegment(names, state, 0, half, opts)
	}
	if state.CurrentHole > holes {
		result.Back = evaluateSegment(names, state, half, holes, opts)
		result.Overall = evaluateSegment(names, state, 0, holes, opts)
	}

	for _, name := range names {
		p := result.Points[name]
		if result.Front.Winner == name {
			p.Front9 = 1
		}
		if result.Back.Winner == name {
			p.Back9 = 1
		}
		if result.Overall.Winner == name {
			p.Overall = 1
		}
		result.Points[name] = p
	}
	return result
}

// evaluateSegment sums gross scores over holes [from, to). Players without a
// single entered score in the segment are not in contention.
func evaluateSegment(names []string, state *model.RoundState, from, to int, opts NassauOptions) model.SegmentResult {
	totals := make(map[string]int, len(names))
	for _, name := range names {
		entered := 0
		sum := 0
		for i := from; i < to; i++ {
			if s := state.Score(name, i); s.HasGross() {
				sum += *s.Gross
				entered++
			}
		}
		if opts.RequireComplete && entered < to-from {
			return model.SegmentResult{}
		}
		if entered > 0 {
			totals[name] = sum
		}
	}
	return model.SegmentResult{
		Decided: true,
		Winner:  lowestUnique(names, totals),
		Totals:  totals,
	}
}
