package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/golfscore/internal/middleware"
	"github.com/mcoot/golfscore/internal/web/templates/layout"
	"github.com/mcoot/golfscore/internal/web/templates/pages"
)

// Recovery creates panic recovery middleware for the web interface.
// Panics become the error page, quoting the request ID.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, scorecardPanicHandler)
}

func scorecardPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	page := pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: "Something went wrong"},
		Message:  "The page could not be shown. Request " + middleware.RequestIDFrom(r.Context()) + ".",
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = page.Render(r.Context(), w)
}
