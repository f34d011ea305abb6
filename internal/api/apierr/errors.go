package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/golfscore/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeRoundNotFound      = "ROUND_NOT_FOUND"
	CodeCourseNotFound     = "COURSE_NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeSettlementNotFound = "SETTLEMENT_NOT_FOUND"
	CodeInvalidRoster      = "INVALID_ROSTER"
	CodeDuplicatePlayer    = "DUPLICATE_PLAYER"
	CodeUnknownFormat      = "UNKNOWN_FORMAT"
	CodeFormatNotAvailable = "FORMAT_NOT_AVAILABLE"
	CodeTeamsRequired      = "TEAMS_REQUIRED"
	CodeInvalidTeams       = "INVALID_TEAMS"
	CodeInvalidGrossScore  = "INVALID_GROSS_SCORE"
	CodeInvalidHole        = "INVALID_HOLE"
	CodeRoundComplete      = "ROUND_COMPLETE"
	CodeRoundNotComplete   = "ROUND_NOT_COMPLETE"
	CodeInvalidCourse      = "INVALID_COURSE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error is reported with
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError. Validation errors keep the
// wrapped message so the caller can see which value was rejected.
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrCourseNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCourseNotFound, "Course not found"}}
	case errors.Is(err, model.ErrSettlementNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSettlementNotFound, "Round has not been settled"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, err.Error()}}
	case errors.Is(err, model.ErrInvalidRoster):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRoster, err.Error()}}
	case errors.Is(err, model.ErrDuplicatePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicatePlayer, err.Error()}}
	case errors.Is(err, model.ErrUnknownFormat):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownFormat, err.Error()}}
	case errors.Is(err, model.ErrFormatNotAvailable):
		return &httpError{http.StatusBadRequest, APIError{CodeFormatNotAvailable, err.Error()}}
	case errors.Is(err, model.ErrTeamsRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeTeamsRequired, err.Error()}}
	case errors.Is(err, model.ErrInvalidTeams):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTeams, err.Error()}}
	case errors.Is(err, model.ErrInvalidGrossScore):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGrossScore, err.Error()}}
	case errors.Is(err, model.ErrInvalidHole):
		return &httpError{http.StatusConflict, APIError{CodeInvalidHole, err.Error()}}
	case errors.Is(err, model.ErrRoundComplete):
		return &httpError{http.StatusConflict, APIError{CodeRoundComplete, "Round is already complete"}}
	case errors.Is(err, model.ErrRoundNotComplete):
		return &httpError{http.StatusConflict, APIError{CodeRoundNotComplete, "Round is not complete"}}
	case errors.Is(err, model.ErrInvalidCourse):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCourse, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
