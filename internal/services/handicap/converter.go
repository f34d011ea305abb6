package handicap

import (
	"math"

	"github.com/mcoot/golfscore/internal/model"
)

// ReferencePar selects which par a course handicap is measured against
type ReferencePar string

const (
	// ReferenceParCourse uses the course's declared total par
	ReferenceParCourse ReferencePar = "course"
	// ReferenceParFixed72 always measures against a par of 72
	ReferenceParFixed72 ReferencePar = "fixed72"
)

// ParseReferencePar converts a config value into a ReferencePar, defaulting to the course par
func ParseReferencePar(s string) ReferencePar {
	if ReferencePar(s) == ReferenceParFixed72 {
		return ReferenceParFixed72
	}
	return ReferenceParCourse
}

// CourseHandicap converts a handicap index into strokes for a specific tee:
// round(index * slope / 113 + (courseRating - referencePar)).
// Halves round towards positive infinity, so -2.5 becomes -2.
func CourseHandicap(index float64, slope int, courseRating float64, referencePar int) int {
	raw := index*float64(slope)/model.NeutralSlope + (courseRating - float64(referencePar))
	return int(math.Floor(raw + 0.5))
}

// StrokesOnHole returns the strokes a player with the given course handicap
// receives on a hole of the given stroke index in a round of holes holes.
// Plus handicappers (negative course handicap) give strokes back.
func StrokesOnHole(courseHandicap, strokeIndex, holes int) int {
	if courseHandicap == 0 || holes <= 0 {
		return 0
	}
	abs := courseHandicap
	sign := 1
	if courseHandicap < 0 {
		abs = -courseHandicap
		sign = -1
	}

	strokes := 0
	if strokeIndex <= abs {
		strokes += sign
	}
	if abs > holes && strokeIndex <= abs-holes {
		strokes += sign
	}
	return strokes
}

// Allocation returns the strokes received on each stroke index 1..holes
// (element 0 is stroke index 1)
func Allocation(courseHandicap, holes int) []int {
	if holes <= 0 {
		return nil
	}
	alloc := make([]int, holes)
	for si := 1; si <= holes; si++ {
		alloc[si-1] = StrokesOnHole(courseHandicap, si, holes)
	}
	return alloc
}

// HolesWithStrokes counts the stroke indices on which a player receives at least one stroke
func HolesWithStrokes(courseHandicap, holes int) int {
	count := 0
	for _, s := range Allocation(courseHandicap, holes) {
		if s > 0 {
			count++
		}
	}
	return count
}

// PlayingHandicap is a player's handicap resolved against their tee
type PlayingHandicap struct {
	Name           string  `json:"name"`
	HandicapIndex  float64 `json:"handicap_index"`
	TeeColor       string  `json:"tee_color"`
	CourseRating   float64 `json:"course_rating"`
	SlopeRating    int     `json:"slope_rating"`
	ReferencePar   int     `json:"reference_par"`
	CourseHandicap int     `json:"course_handicap"`
}

// Converter resolves players' handicaps against a course
type Converter struct {
	referencePar ReferencePar
}

// NewConverter creates a Converter using the given reference par policy
func NewConverter(referencePar ReferencePar) *Converter {
	if referencePar == "" {
		referencePar = ReferenceParCourse
	}
	return &Converter{referencePar: referencePar}
}

// ReferenceParFor returns the par a course handicap is measured against on this course
func (c *Converter) ReferenceParFor(course *model.Course) int {
	if c.referencePar == ReferenceParFixed72 {
		return model.DefaultReferencePar
	}
	return course.ReferencePar()
}

// Ratings returns the course and slope rating for a tee. Unknown tees are
// treated as a neutral course.
func Ratings(course *model.Course, tee string) (float64, int) {
	box, ok := course.TeeBox(tee)
	if !ok {
		return model.DefaultCourseRating, model.NeutralSlope
	}
	rating := box.CourseRating
	if rating == 0 {
		rating = model.DefaultCourseRating
	}
	slope := box.SlopeRating
	if slope == 0 {
		slope = model.NeutralSlope
	}
	return rating, slope
}

// ForPlayer resolves a player's course handicap on the course
func (c *Converter) ForPlayer(player model.Player, course *model.Course) PlayingHandicap {
	tee := player.Tee()
	rating, slope := Ratings(course, tee)
	refPar := c.ReferenceParFor(course)
	return PlayingHandicap{
		Name:           player.Name,
		HandicapIndex:  player.HandicapIndex,
		TeeColor:       tee,
		CourseRating:   rating,
		SlopeRating:    slope,
		ReferencePar:   refPar,
		CourseHandicap: CourseHandicap(player.HandicapIndex, slope, rating, refPar),
	}
}

// StrokesFor returns the strokes a player receives on a 0-based hole index
func (c *Converter) StrokesFor(player model.Player, course *model.Course, holeIndex int) int {
	hole, ok := course.Hole(holeIndex)
	if !ok {
		return 0
	}
	ph := c.ForPlayer(player, course)
	return StrokesOnHole(ph.CourseHandicap, hole.StrokeIndexFor(ph.TeeColor), course.HoleCount())
}
