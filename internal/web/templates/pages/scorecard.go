package pages

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/web/templates/layout"
)

// ScorecardHole is a column header of the scorecard
type ScorecardHole struct {
	Number      int
	Par         int
	StrokeIndex int
	Current     bool
}

// ScorecardCell is one player's entry on one hole
type ScorecardCell struct {
	Gross      string
	Net        string
	Stableford int
	Strokes    int
	Current    bool
}

// ScorecardRow is one player's line on the scorecard
type ScorecardRow struct {
	Name           string
	Team           string
	CourseHandicap int
	Cells          []ScorecardCell
	Totals         model.ScorecardTotals
}

// ScorecardData is rendered by the scorecard page
type ScorecardData struct {
	layout.PageData
	RoundID     model.RoundID
	CourseName  string
	Complete    bool
	CurrentHole int
	Holes       []ScorecardHole
	ParOut      int
	ParIn       int
	ParTotal    int
	Rows        []ScorecardRow
	Lines       []string
	Winners     []string
}

// Scorecard shows every player's card with running totals, the match
// status and, once the round is over, the winners
func Scorecard(data ScorecardData) templ.Component {
	return layout.Page(data.PageData, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := layout.NewWriter(out)
		w.Raw(`<h1>`)
		w.Text(data.CourseName)
		w.Raw(`</h1><p class="round">Round `)
		w.Text(string(data.RoundID))
		if data.Complete {
			w.Text(" · Complete")
		} else {
			w.Textf(" · Hole %d of %d", data.CurrentHole, len(data.Holes))
		}
		w.Raw(`</p>`)

		w.Raw(`<table id="scorecard"><thead><tr><th class="name">Hole</th>`)
		for _, h := range data.Holes {
			if h.Current {
				w.Raw(`<th class="current">`)
			} else {
				w.Raw(`<th>`)
			}
			w.Text(strconv.Itoa(h.Number))
			w.Raw(`</th>`)
		}
		w.Raw(`<th>Out</th><th>In</th><th>Total</th><th>Pts</th></tr>`)

		w.Raw(`<tr class="par"><th class="name">Par</th>`)
		for _, h := range data.Holes {
			cell(w, strconv.Itoa(h.Par))
		}
		cell(w, strconv.Itoa(data.ParOut))
		cell(w, strconv.Itoa(data.ParIn))
		cell(w, strconv.Itoa(data.ParTotal))
		w.Raw(`<td></td></tr>`)

		w.Raw(`<tr class="index"><th class="name">Index</th>`)
		for _, h := range data.Holes {
			cell(w, blankZero(h.StrokeIndex))
		}
		w.Raw(`<td></td><td></td><td></td><td></td></tr></thead><tbody>`)

		for _, row := range data.Rows {
			scorecardRow(w, row)
		}
		w.Raw(`</tbody></table>`)

		if len(data.Winners) > 0 {
			w.Raw(`<h2>Results</h2>`)
			list(w, "winners", data.Winners)
		}
		w.Raw(`<h2>Status</h2>`)
		list(w, "status", data.Lines)
		return w.Err()
	}))
}

func scorecardRow(w *layout.Writer, row ScorecardRow) {
	w.Raw(`<tr class="player" data-player="`)
	w.Text(row.Name)
	w.Raw(`"><th class="name">`)
	w.Text(row.Name)
	if row.Team != "" {
		w.Raw(` <small>(`)
		w.Text(row.Team)
		w.Raw(`)</small>`)
	}
	w.Raw(` <small class="handicap">`)
	w.Text(strconv.Itoa(row.CourseHandicap))
	w.Raw(`</small></th>`)

	for _, c := range row.Cells {
		var classes []string
		if c.Current {
			classes = append(classes, "current")
		}
		if c.Strokes != 0 {
			classes = append(classes, "stroke")
		}
		w.Raw(`<td class="`)
		w.Text(strings.Join(classes, " "))
		w.Raw(`" title="`)
		if c.Net != "" {
			w.Textf("net %s, %d pts", c.Net, c.Stableford)
		}
		w.Raw(`">`)
		w.Text(c.Gross)
		w.Raw(`</td>`)
	}

	totals := []struct{ class, value string }{
		{"out", strconv.Itoa(row.Totals.Front9.Gross)},
		{"in", strconv.Itoa(row.Totals.Back9.Gross)},
		{"total", strconv.Itoa(row.Totals.Total.Gross)},
		{"points", strconv.Itoa(row.Totals.Total.Stableford)},
	}
	for _, t := range totals {
		w.Raw(`<td class="` + t.class + `">`)
		w.Text(t.value)
		w.Raw(`</td>`)
	}
	w.Raw(`</tr>`)
}

func cell(w *layout.Writer, s string) {
	w.Raw(`<td>`)
	w.Text(s)
	w.Raw(`</td>`)
}

func list(w *layout.Writer, class string, items []string) {
	w.Raw(`<ul class="` + class + `">`)
	for _, item := range items {
		w.Raw(`<li>`)
		w.Text(item)
		w.Raw(`</li>`)
	}
	w.Raw(`</ul>`)
}
