package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageData carries the fields every page shares
type PageData struct {
	Title string
}

const styles = `body { font-family: system-ui, sans-serif; margin: 1.5rem; color: #1d2b1f; }
table { border-collapse: collapse; margin-bottom: 1rem; }
th, td { border: 1px solid #9bb59f; padding: 0.25rem 0.4rem; text-align: center; }
th.name, td.name { text-align: left; }
.current { background: #e4f2e6; }
.stroke::after { content: "•"; color: #b23; }
.status li, .winners li { margin: 0.2rem 0; }`

// Base wraps the children in the context with the site header and styles
func Base(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewWriter(out)
		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.Text(data.Title)
		w.Raw(` | Golfscore</title><style>`)
		w.Raw(styles)
		w.Raw(`</style></head><body><header><a href="/">Golfscore</a></header><main>`)
		w.Component(ctx, templ.GetChildren(ctx))
		w.Raw(`</main></body></html>`)
		return w.Err()
	})
}

// Page renders content inside the base layout
func Page(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Base(data).Render(templ.WithChildren(ctx, content), w)
	})
}
