package course

import (
	"fmt"
	"sort"

	"github.com/mcoot/golfscore/internal/model"
)

const (
	minSlope = 55
	maxSlope = 155
)

// Validate checks a course can be scored: holes numbered 1..N in order,
// unique tee colours, sane ratings, and stroke indices that rank every hole
// exactly once from each tee the course lists or ranks for. A course without any stroke indices is valid;
// strokes then fall in hole number order.
func Validate(c *model.Course) error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", model.ErrInvalidCourse)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: %s: missing name", model.ErrInvalidCourse, c.ID)
	}
	if len(c.Holes) == 0 {
		return fmt.Errorf("%w: %s: no holes", model.ErrInvalidCourse, c.ID)
	}

	seen := make(map[string]bool, len(c.TeeBoxes))
	for _, t := range c.TeeBoxes {
		if t.Color == "" {
			return fmt.Errorf("%w: %s: tee box without a colour", model.ErrInvalidCourse, c.ID)
		}
		if seen[t.Color] {
			return fmt.Errorf("%w: %s: duplicate tee %q", model.ErrInvalidCourse, c.ID, t.Color)
		}
		seen[t.Color] = true
		if t.SlopeRating != 0 && (t.SlopeRating < minSlope || t.SlopeRating > maxSlope) {
			return fmt.Errorf("%w: %s: slope %d for %s tee outside %d-%d",
				model.ErrInvalidCourse, c.ID, t.SlopeRating, t.Color, minSlope, maxSlope)
		}
		if t.CourseRating < 0 {
			return fmt.Errorf("%w: %s: negative course rating for %s tee", model.ErrInvalidCourse, c.ID, t.Color)
		}
	}

	for i, h := range c.Holes {
		if h.Number != i+1 {
			return fmt.Errorf("%w: %s: hole %d is numbered %d", model.ErrInvalidCourse, c.ID, i+1, h.Number)
		}
	}

	return validateStrokeIndex(c)
}

func validateStrokeIndex(c *model.Course) error {
	tees := make(map[string]bool, len(c.TeeBoxes))
	for _, t := range c.TeeBoxes {
		tees[t.Color] = true
	}
	anySet := false
	for _, h := range c.Holes {
		if !h.StrokeIndex.IsSet() {
			continue
		}
		anySet = true
		for _, t := range h.StrokeIndex.Tees() {
			tees[t] = true
		}
	}
	if !anySet {
		return nil
	}
	if len(tees) == 0 {
		tees[model.DefaultTeeColor] = true
	}

	colors := make([]string, 0, len(tees))
	for t := range tees {
		colors = append(colors, t)
	}
	sort.Strings(colors)

	n := len(c.Holes)
	for _, tee := range colors {
		ranked := make([]int, n+1)
		for _, h := range c.Holes {
			si, ok := h.StrokeIndex.Resolve(tee)
			if !ok {
				return fmt.Errorf("%w: %s: hole %d has no stroke index for %s tee",
					model.ErrInvalidCourse, c.ID, h.Number, tee)
			}
			if si < 1 || si > n {
				return fmt.Errorf("%w: %s: hole %d stroke index %d outside 1-%d",
					model.ErrInvalidCourse, c.ID, h.Number, si, n)
			}
			if prev := ranked[si]; prev != 0 {
				return fmt.Errorf("%w: %s: holes %d and %d share stroke index %d from %s tee",
					model.ErrInvalidCourse, c.ID, prev, h.Number, si, tee)
			}
			ranked[si] = h.Number
		}
	}
	return nil
}
