package status

import (
	"fmt"
	"sort"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/formats"
)

// SummarizerInterface defines the status contract
type SummarizerInterface interface {
	Summarize(selected []model.Format, state *model.RoundState, players []model.Player, teams *model.Teams) []string
}

// Summarizer turns format results into one human readable line per format
type Summarizer struct {
	engine formats.EngineInterface
}

var _ SummarizerInterface = (*Summarizer)(nil)

// New creates a new Summarizer
func New(engine formats.EngineInterface) *Summarizer {
	return &Summarizer{engine: engine}
}

// Summarize recomputes the selected formats and reports their status lines
func (s *Summarizer) Summarize(selected []model.Format, state *model.RoundState, players []model.Player, teams *model.Teams) []string {
	var results model.FormatResults
	for _, f := range selected {
		r, err := s.engine.Compute(f, players, state, teams)
		if err != nil {
			continue
		}
		switch v := r.(type) {
		case model.MatchPlayResult:
			results.MatchPlay = &v
		case model.SkinsResult:
			results.Skins = &v
		case model.NassauResult:
			results.Nassau = &v
		case model.SixPointResult:
			results.SixPoint = &v
		case model.TeamMatchResult:
			if f == model.FormatFourball {
				results.Fourball = &v
			} else {
				results.Foursomes = &v
			}
		case model.TeamStrokeResult:
			results.Scramble = &v
		}
	}
	return Lines(selected, results, state, players)
}

// Lines reports the status of already computed results. Formats are always
// reported in the same order regardless of selection order. When no format
// has anything to say the gross stroke leader is reported instead.
func Lines(selected []model.Format, results model.FormatResults, state *model.RoundState, players []model.Player) []string {
	remaining := holesRemaining(state)
	lines := []string{}
	for _, f := range model.AllFormats() {
		if !model.HasFormat(selected, f) {
			continue
		}
		switch f {
		case model.FormatMatchPlay:
			if r := results.MatchPlay; r != nil && r.Applicable {
				lines = append(lines, matchPlayLine(*r, remaining(r.HolesPlayed)))
			}
		case model.FormatSkins:
			if r := results.Skins; r != nil {
				lines = append(lines, skinsLine(*r))
			}
		case model.FormatNassau:
			if r := results.Nassau; r != nil {
				lines = append(lines, nassauLines(*r, state.HoleCount())...)
			}
		case model.FormatSixPoint:
			if r := results.SixPoint; r != nil && r.Applicable {
				lines = append(lines, sixPointLine(*r, model.PlayerNames(players)))
			}
		case model.FormatFourball:
			if r := results.Fourball; r != nil && r.Applicable {
				lines = append(lines, "Fourball: "+teamMatchLine(*r, remaining(r.HolesPlayed)))
			}
		case model.FormatFoursomes:
			if r := results.Foursomes; r != nil && r.Applicable {
				lines = append(lines, "Foursomes: "+teamMatchLine(*r, remaining(r.HolesPlayed)))
			}
		case model.FormatScramble:
			if r := results.Scramble; r != nil && r.Applicable {
				lines = append(lines, scrambleLine(*r))
			}
		}
	}

	if len(lines) == 0 {
		lines = append(lines, strokeLine(CumulativeTotals(state, players, nil)))
	}
	return lines
}

// holesRemaining returns a function giving the holes left to play in a match
// that has played the given number of holes. A finished round has none left.
func holesRemaining(state *model.RoundState) func(played int) int {
	return func(played int) int {
		if state.IsFinished() {
			return 0
		}
		return max(0, state.HoleCount()-played)
	}
}

// MatchLine reports a match between two sides. A lead larger than the holes
// remaining has clinched the match.
func MatchLine(leader string, margin, remaining int) string {
	switch {
	case margin == 0:
		return "All Square"
	case margin > remaining && remaining == 0:
		return fmt.Sprintf("%s wins %d-Up", leader, margin)
	case margin > remaining:
		return fmt.Sprintf("%s wins %d&%d", leader, margin, remaining)
	default:
		return fmt.Sprintf("%s is %d-Up", leader, margin)
	}
}

func matchPlayLine(r model.MatchPlayResult, remaining int) string {
	diff := r.HolesWon[0] - r.HolesWon[1]
	if diff < 0 {
		return MatchLine(r.Players[1], -diff, remaining)
	}
	return MatchLine(r.Players[0], diff, remaining)
}

func teamMatchLine(r model.TeamMatchResult, remaining int) string {
	diff := r.TeamA.HolesWon - r.TeamB.HolesWon
	if diff < 0 {
		return MatchLine(r.TeamB.Name, -diff, remaining)
	}
	return MatchLine(r.TeamA.Name, diff, remaining)
}

func skinsLine(r model.SkinsResult) string {
	leaders, most := skinsLeaders(r)
	switch {
	case most == 0:
		return "No skins won yet"
	case len(leaders) == 1:
		return fmt.Sprintf("%s has %s", leaders[0], plural(most, "skin"))
	default:
		return fmt.Sprintf("Tied with %s each", plural(most, "skin"))
	}
}

// skinsLeaders returns the players holding the most skins, sorted by name
func skinsLeaders(r model.SkinsResult) ([]string, int) {
	most := 0
	for _, n := range r.Skins {
		most = max(most, n)
	}
	if most == 0 {
		return nil, 0
	}
	var leaders []string
	for name, n := range r.Skins {
		if n == most {
			leaders = append(leaders, name)
		}
	}
	sort.Strings(leaders)
	return leaders, most
}

// nassauLines names the front segment "Front 9" only on a full-length
// course; shorter or longer courses split at half their holes.
func nassauLines(r model.NassauResult, holes int) []string {
	front := "Front"
	if holes == 18 {
		front = "Front 9"
	}
	var lines []string
	if r.Front.Decided {
		if r.Front.Winner != "" {
			lines = append(lines, r.Front.Winner+" won "+front)
		} else {
			lines = append(lines, front+" halved")
		}
	}
	if r.Overall.Decided {
		if _, top, next := nassauStandings(r); top > 0 {
			lines = append(lines, fmt.Sprintf("Nassau: %d-%d", top, next))
		}
	}
	return lines
}

// nassauStandings returns the player with the most Nassau points, their
// points and the best points of anyone else
func nassauStandings(r model.NassauResult) (string, int, int) {
	names := make([]string, 0, len(r.Points))
	for name := range r.Points {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r.Points[names[i]].Total(), r.Points[names[j]].Total()
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})
	if len(names) == 0 {
		return "", 0, 0
	}
	next := 0
	if len(names) > 1 {
		next = r.Points[names[1]].Total()
	}
	return names[0], r.Points[names[0]].Total(), next
}

// sixPointScores returns the totals sorted highest first along with the
// unique leader, or "" when the lead is shared
func sixPointScores(r model.SixPointResult, names []string) (string, []int) {
	ordered := make([]string, len(names))
	copy(ordered, names)
	sort.SliceStable(ordered, func(i, j int) bool { return r.Totals[ordered[i]] > r.Totals[ordered[j]] })

	scores := make([]int, len(ordered))
	for i, name := range ordered {
		scores[i] = r.Totals[name]
	}
	if len(scores) == 0 || (len(scores) > 1 && scores[0] == scores[1]) {
		return "", scores
	}
	return ordered[0], scores
}

func sixPointLine(r model.SixPointResult, names []string) string {
	leader, scores := sixPointScores(r, names)
	switch {
	case len(scores) == 0 || scores[0] == 0:
		return "Six Point: All tied at 0"
	case leader != "":
		return fmt.Sprintf("Six Point: %s leads %s", leader, dashed(scores))
	default:
		return "Six Point: Tied " + dashed(scores)
	}
}

func scrambleLine(r model.TeamStrokeResult) string {
	a, b := r.TeamA.TotalScore, r.TeamB.TotalScore
	switch {
	case r.HolesPlayed == 0:
		return "Scramble: No scores yet"
	case a == b:
		return "Scramble: Teams tied"
	case a < b:
		return fmt.Sprintf("Scramble: %s leads by %d", r.TeamA.Name, b-a)
	default:
		return fmt.Sprintf("Scramble: %s leads by %d", r.TeamB.Name, a-b)
	}
}

// strokeLine reports the gross stroke play leader
func strokeLine(totals []model.PlayerTotal) string {
	switch len(totals) {
	case 0:
		return "Tied"
	case 1:
		return fmt.Sprintf("%s: %s", totals[0].Name, plural(totals[0].GrossTotal, "stroke"))
	case 2:
		diff := totals[0].GrossTotal - totals[1].GrossTotal
		switch {
		case diff == 0:
			return "Tied"
		case diff > 0:
			return fmt.Sprintf("%s leads by %s", totals[1].Name, plural(diff, "stroke"))
		default:
			return fmt.Sprintf("%s leads by %s", totals[0].Name, plural(-diff, "stroke"))
		}
	}

	sorted := make([]model.PlayerTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].GrossTotal < sorted[j].GrossTotal })
	ahead := sorted[1].GrossTotal - sorted[0].GrossTotal
	if ahead == 0 {
		return "Tied for the lead"
	}
	return fmt.Sprintf("%s leads by %s", sorted[0].Name, plural(ahead, "stroke"))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func dashed(scores []int) string {
	s := ""
	for i, v := range scores {
		if i > 0 {
			s += "-"
		}
		s += fmt.Sprint(v)
	}
	return s
}
