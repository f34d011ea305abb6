package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/golfscore/internal/api/request"
	"github.com/mcoot/golfscore/internal/api/response"
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/course"
)

// CourseHandler handles course catalog endpoints
type CourseHandler struct {
	courses course.ServiceInterface
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courses course.ServiceInterface) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List handles GET /api/v1/courses?q=
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.courses.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CourseList{Courses: summaries})
}

// Get handles GET /api/v1/courses/{id}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.courses.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

// Handicaps handles GET /api/v1/courses/{id}/handicaps?tee=&player=name:index
func (h *CourseHandler) Handicaps(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := query["player"]
	if len(params) == 0 {
		WriteError(w, NewInvalidRequestError("at least one player is required"))
		return
	}

	players := make([]model.Player, 0, len(params))
	for _, param := range params {
		p, err := request.ParsePlayerParam(param)
		if err != nil {
			WriteError(w, NewInvalidRequestError(err.Error()))
			return
		}
		players = append(players, p)
	}

	summary, err := h.courses.HandicapSummary(r.Context(), mux.Vars(r)["id"], query.Get("tee"), players)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, summary)
}
