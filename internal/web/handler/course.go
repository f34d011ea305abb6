package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/course"
	"github.com/mcoot/golfscore/internal/web/templates/layout"
	"github.com/mcoot/golfscore/internal/web/templates/pages"
)

// CourseHandler handles the course catalog pages
type CourseHandler struct {
	renderer
	courses course.ServiceInterface
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courses course.ServiceInterface, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		renderer: renderer{logger: logger},
		courses:  courses,
	}
}

// Home renders the course list, filtered by the q query parameter
func (h *CourseHandler) Home(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	summaries, err := h.courses.List(r.Context(), query)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, pages.Home(pages.HomeData{
		PageData: layout.PageData{Title: "Courses"},
		Query:    query,
		Courses:  summaries,
	}))
}

// Course renders one course's tees and holes
func (h *CourseHandler) Course(w http.ResponseWriter, r *http.Request) {
	c, err := h.courses.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	holes := make([]pages.CourseHole, len(c.Holes))
	for i, hole := range c.Holes {
		holes[i] = pages.CourseHole{
			Number:      hole.Number,
			Par:         hole.ParFor(model.DefaultTeeColor),
			StrokeIndex: hole.StrokeIndexFor(model.DefaultTeeColor),
			Yardage:     hole.YardageFor(model.DefaultTeeColor),
		}
	}
	h.render(w, r, http.StatusOK, pages.Course(pages.CourseData{
		PageData: layout.PageData{Title: c.Name},
		Course:   c,
		Holes:    holes,
	}))
}
