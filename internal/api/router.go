package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/golfscore/internal/api/apierr"
	"github.com/mcoot/golfscore/internal/api/handler"
	"github.com/mcoot/golfscore/internal/api/response"
	mw "github.com/mcoot/golfscore/internal/middleware"
	"github.com/mcoot/golfscore/internal/services/course"
	"github.com/mcoot/golfscore/internal/services/round"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	CourseService   course.ServiceInterface
	RoundController round.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	courseHandler := handler.NewCourseHandler(cfg.CourseService)
	roundHandler := handler.NewRoundHandler(cfg.RoundController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(mw.RequestID())
	api.Use(mw.Recovery(cfg.Logger, panicHandler))
	api.Use(mw.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Course routes
	api.HandleFunc("/courses", courseHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/courses/{id}", courseHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/courses/{id}/handicaps", courseHandler.Handicaps).Methods(http.MethodGet)

	// Round routes
	api.HandleFunc("/rounds", roundHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}", roundHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rounds/{id}", roundHandler.Abandon).Methods(http.MethodDelete)
	api.HandleFunc("/rounds/{id}/scores", roundHandler.Score).Methods(http.MethodPut)
	api.HandleFunc("/rounds/{id}/confirm", roundHandler.Confirm).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}/advance", roundHandler.Advance).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}/back", roundHandler.Back).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}/status", roundHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/rounds/{id}/formats/{format}", roundHandler.Format).Methods(http.MethodGet)
	api.HandleFunc("/rounds/{id}/complete", roundHandler.Complete).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}/settlement", roundHandler.Settlement).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

// panicHandler answers a recovered panic with the standard JSON error body
func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
