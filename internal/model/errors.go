package model

import "errors"

// Common errors used across the application
var (
	// Round errors
	ErrRoundNotFound      = errors.New("round not found")
	ErrRoundComplete      = errors.New("round is already complete")
	ErrRoundNotComplete   = errors.New("round is not complete")
	ErrSettlementNotFound = errors.New("settlement not found")

	// Roster errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrInvalidRoster   = errors.New("a round needs between 1 and 4 players")
	ErrDuplicatePlayer = errors.New("player names must be unique")

	// Format errors
	ErrUnknownFormat      = errors.New("unknown format")
	ErrFormatNotAvailable = errors.New("format not available for this number of players")
	ErrTeamsRequired      = errors.New("team formats require teams")
	ErrInvalidTeams       = errors.New("teams must split four players two and two")

	// Score errors
	ErrInvalidGrossScore = errors.New("gross score must be between 1 and 15")
	ErrInvalidHole       = errors.New("invalid hole")

	// Course errors
	ErrCourseNotFound = errors.New("course not found")
	ErrInvalidCourse  = errors.New("invalid course")
)
