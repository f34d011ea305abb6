package pages

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/golfscore/internal/services/course"
	"github.com/mcoot/golfscore/internal/web/templates/layout"
)

// HomeData is rendered by the course list page
type HomeData struct {
	layout.PageData
	Query   string
	Courses []course.Summary
}

// Home lists the catalog with a search box
func Home(data HomeData) templ.Component {
	return layout.Page(data.PageData, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := layout.NewWriter(out)
		w.Raw(`<h1>Courses</h1><form method="get" action="/"><input type="search" name="q" value="`)
		w.Text(data.Query)
		w.Raw(`" placeholder="Name or location"><button type="submit">Search</button></form>`)

		if len(data.Courses) == 0 {
			w.Raw(`<p class="empty">No courses match "`)
			w.Text(data.Query)
			w.Raw(`".</p>`)
			return w.Err()
		}

		w.Raw(`<table id="courses"><thead><tr><th class="name">Course</th><th class="name">Location</th>`)
		w.Raw(`<th>Holes</th><th>Par</th><th>Tees</th></tr></thead><tbody>`)
		for _, c := range data.Courses {
			w.Raw(`<tr data-course="`)
			w.Text(c.ID)
			w.Raw(`"><td class="name"><a href="`)
			w.Text("/courses/" + url.PathEscape(c.ID))
			w.Raw(`">`)
			w.Text(c.Name)
			w.Raw(`</a></td><td class="name">`)
			w.Text(c.Location)
			w.Raw(`</td><td>`)
			w.Text(strconv.Itoa(c.Holes))
			w.Raw(`</td><td>`)
			w.Text(strconv.Itoa(c.TotalPar))
			w.Raw(`</td><td>`)
			w.Text(strconv.Itoa(len(c.TeeBoxes)))
			w.Raw(`</td></tr>`)
		}
		w.Raw(`</tbody></table>`)
		return w.Err()
	}))
}
