package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/web/templates/layout"
)

// CourseHole is one row of a course's hole table
type CourseHole struct {
	Number      int
	Par         int
	StrokeIndex int
	Yardage     int
}

// CourseData is rendered by the course page
type CourseData struct {
	layout.PageData
	Course *model.Course
	Holes  []CourseHole
}

// Course shows a course's tee ratings and hole table
func Course(data CourseData) templ.Component {
	return layout.Page(data.PageData, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := layout.NewWriter(out)
		w.Raw(`<h1>`)
		w.Text(data.Course.Name)
		w.Raw(`</h1><p class="location">`)
		w.Text(data.Course.Location)
		w.Raw(`</p>`)

		w.Raw(`<h2>Tees</h2><table id="tees"><thead><tr><th class="name">Tee</th>`)
		w.Raw(`<th>Rating</th><th>Slope</th><th>Yards</th></tr></thead><tbody>`)
		for _, t := range data.Course.TeeBoxes {
			w.Raw(`<tr data-tee="`)
			w.Text(t.Color)
			w.Raw(`"><td class="name">`)
			w.Text(t.Name)
			w.Raw(`</td><td>`)
			w.Textf("%.1f", t.CourseRating)
			w.Raw(`</td><td>`)
			w.Text(strconv.Itoa(t.SlopeRating))
			w.Raw(`</td><td>`)
			w.Text(strconv.Itoa(t.TotalYardage))
			w.Raw(`</td></tr>`)
		}
		w.Raw(`</tbody></table>`)

		w.Raw(`<h2>Holes</h2><table id="holes"><thead><tr><th>Hole</th><th>Par</th>`)
		w.Raw(`<th>Index</th><th>Yards</th></tr></thead><tbody>`)
		for _, h := range data.Holes {
			w.Raw(`<tr><td>`)
			w.Text(strconv.Itoa(h.Number))
			w.Raw(`</td><td>`)
			w.Text(strconv.Itoa(h.Par))
			w.Raw(`</td><td>`)
			w.Text(blankZero(h.StrokeIndex))
			w.Raw(`</td><td>`)
			w.Text(blankZero(h.Yardage))
			w.Raw(`</td></tr>`)
		}
		w.Raw(`</tbody></table>`)
		return w.Err()
	}))
}

// blankZero leaves unknown values empty instead of printing 0
func blankZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
