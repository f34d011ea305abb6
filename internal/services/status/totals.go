package status

import (
	"fmt"
	"strings"

	"github.com/mcoot/golfscore/internal/model"
)

// CumulativeTotals sums each player's entered scores through the hole being
// played. Six point totals are filled in when a result is given.
func CumulativeTotals(state *model.RoundState, players []model.Player, sixPoint *model.SixPointResult) []model.PlayerTotal {
	through := min(state.CurrentHole, state.HoleCount())
	totals := make([]model.PlayerTotal, 0, len(players))
	for _, p := range players {
		t := model.PlayerTotal{Name: p.Name}
		for i := 0; i < through; i++ {
			s := state.Score(p.Name, i)
			if !s.HasGross() {
				continue
			}
			t.GrossTotal += *s.Gross
			t.StablefordTotal += s.Stableford
			t.HolesCompleted++
		}
		if sixPoint != nil && sixPoint.Applicable {
			t.SixPointTotal = sixPoint.Totals[p.Name]
		}
		totals = append(totals, t)
	}
	return totals
}

// ScorecardTotals sums every entered score on the card into front nine, back
// nine and full round totals
func ScorecardTotals(state *model.RoundState) []model.ScorecardTotals {
	half := state.HoleCount() / 2
	totals := make([]model.ScorecardTotals, 0, len(state.Players))
	for _, p := range state.Players {
		t := model.ScorecardTotals{Name: p.Name, Team: state.Teams.TeamOf(p.Name)}
		for i := 0; i < state.HoleCount(); i++ {
			s := state.Score(p.Name, i)
			if !s.HasGross() {
				continue
			}
			seg := &t.Back9
			if i < half {
				seg = &t.Front9
			}
			addScore(seg, s)
			addScore(&t.Total, s)
		}
		totals = append(totals, t)
	}
	return totals
}

func addScore(seg *model.SegmentTotals, s model.HoleScore) {
	seg.Gross += *s.Gross
	if s.HasNet() {
		seg.Net += *s.Net
	}
	seg.Stableford += s.Stableford
}

// Winners reports the headline result of each selected format for a
// settlement. Formats without a winner are left out.
func Winners(selected []model.Format, results model.FormatResults, state *model.RoundState) []string {
	lines := Lines(selected, results, state, state.Players)
	find := func(prefix string) string {
		for _, l := range lines {
			if strings.HasPrefix(l, prefix) {
				return l
			}
		}
		return ""
	}

	var winners []string
	for _, f := range model.AllFormats() {
		if !model.HasFormat(selected, f) {
			continue
		}
		switch f {
		case model.FormatMatchPlay:
			if r := results.MatchPlay; r != nil && r.Applicable {
				winners = append(winners, "Match Play: "+matchPlayLine(*r, 0))
			}
		case model.FormatSkins:
			if r := results.Skins; r != nil {
				if w := skinsWinner(*r); w != "" {
					winners = append(winners, "Skins: "+w)
				}
			}
		case model.FormatNassau:
			if r := results.Nassau; r != nil && r.Overall.Decided {
				if leader, top, next := nassauStandings(*r); top > 0 {
					winners = append(winners, fmt.Sprintf("Nassau: %s %d-%d", leader, top, next))
				}
			}
		case model.FormatSixPoint:
			if r := results.SixPoint; r != nil && r.Applicable {
				if w := sixPointWinner(*r, model.PlayerNames(state.Players)); w != "" {
					winners = append(winners, "Six Point: "+w)
				}
			}
		case model.FormatFourball:
			if l := find("Fourball: "); l != "" {
				winners = append(winners, l)
			}
		case model.FormatFoursomes:
			if l := find("Foursomes: "); l != "" {
				winners = append(winners, l)
			}
		case model.FormatScramble:
			if l := find("Scramble: "); l != "" {
				winners = append(winners, l)
			}
		}
	}
	return winners
}

func skinsWinner(r model.SkinsResult) string {
	leaders, most := skinsLeaders(r)
	if most == 0 {
		return ""
	}
	labelled := make([]string, len(leaders))
	for i, name := range leaders {
		labelled[i] = fmt.Sprintf("%s (%s)", name, plural(most, "skin"))
	}
	if len(labelled) == 1 {
		return labelled[0]
	}
	return "Tied - " + strings.Join(labelled, ", ")
}

func sixPointWinner(r model.SixPointResult, names []string) string {
	leader, scores := sixPointScores(r, names)
	switch {
	case len(scores) == 0 || scores[0] == 0:
		return ""
	case leader != "":
		return fmt.Sprintf("%s (%d pts) - %s", leader, scores[0], dashed(scores[1:]))
	default:
		return fmt.Sprintf("Tied at %d points", scores[0])
	}
}
