package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/web/templates/layout"
	"github.com/mcoot/golfscore/internal/web/templates/pages"
)

// renderer serves page components and error pages for the web handlers
type renderer struct {
	logger *slog.Logger
}

// render serves a page. Components render into a buffer first so a
// failure still becomes a 500.
func (p renderer) render(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	templ.Handler(page,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			p.logger.Error("failed to render page",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// renderError shows a not found page for missing rounds and courses and a
// generic failure page for everything else
func (p renderer) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	data := pages.ErrorData{
		PageData: layout.PageData{Title: "Something went wrong"},
		Message:  "Please try again later.",
	}
	switch {
	case errors.Is(err, model.ErrRoundNotFound):
		status = http.StatusNotFound
		data.Title, data.Message = "Round not found", "That round does not exist or has expired."
	case errors.Is(err, model.ErrCourseNotFound):
		status = http.StatusNotFound
		data.Title, data.Message = "Course not found", "That course is not in the catalog."
	default:
		p.logger.Error("web request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	p.render(w, r, status, pages.Error(data))
}

// NotFound renders the not found page for unknown paths
func (p renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusNotFound, pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: "Page not found"},
		Message:  "There is nothing at " + r.URL.Path + ".",
	}))
}
