package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/golfscore/internal/web/templates/layout"
)

// ErrorData is rendered by the error page
type ErrorData struct {
	layout.PageData
	Message string
}

// Error shows a failure message with a way back to the course list
func Error(data ErrorData) templ.Component {
	return layout.Page(data.PageData, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := layout.NewWriter(out)
		w.Raw(`<h1>`)
		w.Text(data.Title)
		w.Raw(`</h1><p class="error">`)
		w.Text(data.Message)
		w.Raw(`</p><p><a href="/">Return to courses</a></p>`)
		return w.Err()
	}))
}
