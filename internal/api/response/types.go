package response

import (
	"time"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/course"
)

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}

// CourseList is the response for listing courses
type CourseList struct {
	Courses []course.Summary `json:"courses"`
}

// Hole describes one hole of the round's course for the round's default tee
type Hole struct {
	Number      int `json:"number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"stroke_index"`
}

// Round represents a round in API responses
type Round struct {
	ID          string                       `json:"id"`
	CourseID    string                       `json:"course_id"`
	CourseName  string                       `json:"course_name"`
	Holes       []Hole                       `json:"holes"`
	CurrentHole int                          `json:"current_hole"`
	Finished    bool                         `json:"finished"`
	Status      string                       `json:"status"`
	Players     []model.Player               `json:"players"`
	Teams       *model.Teams                 `json:"teams,omitempty"`
	Formats     []model.Format               `json:"formats"`
	Scores      map[string][]model.HoleScore `json:"scores"`
	Confirmed   []bool                       `json:"confirmed"`
	Results     model.FormatResults          `json:"results"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// RoundFromModel converts a model.RoundState to a response Round
func RoundFromModel(r *model.RoundState) Round {
	holes := make([]Hole, r.HoleCount())
	for i, h := range r.Course.Holes {
		holes[i] = Hole{
			Number:      h.Number,
			Par:         h.ParFor(model.DefaultTeeColor),
			StrokeIndex: h.StrokeIndexFor(model.DefaultTeeColor),
		}
	}
	return Round{
		ID:          string(r.ID),
		CourseID:    r.Course.ID,
		CourseName:  r.Course.Name,
		Holes:       holes,
		CurrentHole: r.CurrentHole,
		Finished:    r.IsFinished(),
		Status:      string(r.Status),
		Players:     r.Players,
		Teams:       r.Teams,
		Formats:     r.Formats,
		Scores:      r.Scores,
		Confirmed:   r.Confirmed,
		Results:     r.Results,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Advance is the response for moving to the next hole. Settlement is set
// when leaving the last hole completed the round.
type Advance struct {
	Round      Round             `json:"round"`
	Settlement *model.Settlement `json:"settlement,omitempty"`
}

// Status is the response for a round's status check
type Status struct {
	RoundID     string              `json:"round_id"`
	CurrentHole int                 `json:"current_hole"`
	Lines       []string            `json:"lines"`
	Totals      []model.PlayerTotal `json:"totals"`
}

// FormatResult is the response for recomputing a single format
type FormatResult struct {
	Format      model.Format `json:"format"`
	DisplayName string       `json:"display_name"`
	Result      any          `json:"result"`
}
