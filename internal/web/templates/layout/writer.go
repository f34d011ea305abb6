package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer writes markup, keeping the first write error so components can
// emit a run of elements and check once at the end
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps the writer a component renders into
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes escaped text, safe in element bodies and quoted attributes
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Textf formats then escapes
func (w *Writer) Textf(format string, args ...any) {
	w.Text(fmt.Sprintf(format, args...))
}

// Component renders a child component in place
func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Err returns the first write error
func (w *Writer) Err() error {
	return w.err
}
