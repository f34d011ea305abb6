package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	mw "github.com/mcoot/golfscore/internal/middleware"
	"github.com/mcoot/golfscore/internal/services/course"
	"github.com/mcoot/golfscore/internal/services/round"
	"github.com/mcoot/golfscore/internal/web/handler"
	"github.com/mcoot/golfscore/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	CourseService   course.ServiceInterface
	RoundController round.ControllerInterface
	StaticDir       string // Optional path to static files
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(mw.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(mw.Logging(cfg.Logger))

	courseHandler := handler.NewCourseHandler(cfg.CourseService, cfg.Logger)
	scorecardHandler := handler.NewScorecardHandler(cfg.RoundController, cfg.CourseService, cfg.Logger)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/", courseHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/courses/{id}", courseHandler.Course).Methods(http.MethodGet)
	r.HandleFunc("/rounds/{id}/scorecard", scorecardHandler.View).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(courseHandler.NotFound)

	return r
}
