package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	// NeutralSlope is the slope rating of a course of standard difficulty
	NeutralSlope = 113
	// DefaultCourseRating is assumed when a player's tee box has no rating
	DefaultCourseRating = 72.0
	// DefaultReferencePar is used when a course does not declare its par
	DefaultReferencePar = 72
	// DefaultHolePar is used when a hole has no par for the player's tee
	DefaultHolePar = 4
	// StandardHoles is the number of holes in a regulation round
	StandardHoles = 18
)

// HoleValue is a per-hole number that is either shared by every tee or
// set separately per tee colour (par and stroke index both come in both shapes)
type HoleValue struct {
	uniform int
	perTee  map[string]int
	set     bool
}

// Uniform returns a value shared by all tees
func Uniform(v int) HoleValue {
	return HoleValue{uniform: v, set: true}
}

// PerTee returns a value keyed by tee colour
func PerTee(values map[string]int) HoleValue {
	m := make(map[string]int, len(values))
	for k, v := range values {
		m[k] = v
	}
	return HoleValue{perTee: m, set: true}
}

// IsSet reports whether the value holds anything
func (v HoleValue) IsSet() bool {
	return v.set
}

// IsPerTee reports whether the value differs by tee
func (v HoleValue) IsPerTee() bool {
	return v.perTee != nil
}

// Resolve returns the value for a tee colour. Per-tee values fall back to
// the white tee when the requested colour is missing.
func (v HoleValue) Resolve(tee string) (int, bool) {
	if !v.set {
		return 0, false
	}
	if v.perTee == nil {
		return v.uniform, v.uniform != 0
	}
	if n, ok := v.perTee[tee]; ok && n != 0 {
		return n, true
	}
	if n, ok := v.perTee[DefaultTeeColor]; ok && n != 0 {
		return n, true
	}
	return 0, false
}

// Tees returns the tee colours of a per-tee value, sorted
func (v HoleValue) Tees() []string {
	tees := make([]string, 0, len(v.perTee))
	for t := range v.perTee {
		tees = append(tees, t)
	}
	sort.Strings(tees)
	return tees
}

// MarshalJSON encodes uniform values as a number and per-tee values as an object
func (v HoleValue) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.perTee != nil:
		return json.Marshal(v.perTee)
	default:
		return json.Marshal(v.uniform)
	}
}

// UnmarshalJSON accepts either a number or an object keyed by tee colour
func (v *HoleValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = HoleValue{}
		return nil
	}
	if data[0] == '{' {
		var m map[string]int
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*v = PerTee(m)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("hole value must be a number or a map of tee colour to number: %w", err)
	}
	*v = Uniform(n)
	return nil
}

// MarshalYAML mirrors MarshalJSON
func (v HoleValue) MarshalYAML() (any, error) {
	switch {
	case !v.set:
		return nil, nil
	case v.perTee != nil:
		return v.perTee, nil
	default:
		return v.uniform, nil
	}
}

// UnmarshalYAML mirrors UnmarshalJSON
func (v *HoleValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var m map[string]int
		if err := node.Decode(&m); err != nil {
			return err
		}
		*v = PerTee(m)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*v = HoleValue{}
			return nil
		}
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: hole value must be a number or a map of tee colour to number: %w", node.Line, err)
		}
		*v = Uniform(n)
	default:
		return fmt.Errorf("line %d: unsupported hole value", node.Line)
	}
	return nil
}

// Hole is a single hole on a course
type Hole struct {
	Number      int            `json:"number" yaml:"number"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Par         HoleValue      `json:"par" yaml:"par"`
	StrokeIndex HoleValue      `json:"stroke_index" yaml:"stroke_index"`
	Yardages    map[string]int `json:"yardages,omitempty" yaml:"yardages,omitempty"`
}

// ParFor returns the par of the hole from the given tee
func (h Hole) ParFor(tee string) int {
	if par, ok := h.Par.Resolve(tee); ok {
		return par
	}
	return DefaultHolePar
}

// StrokeIndexFor returns the stroke index of the hole from the given tee.
// Holes without a ranking fall back to their hole number.
func (h Hole) StrokeIndexFor(tee string) int {
	if si, ok := h.StrokeIndex.Resolve(tee); ok {
		return si
	}
	return h.Number
}

// YardageFor returns the hole's length from the given tee, or 0 if unknown
func (h Hole) YardageFor(tee string) int {
	if y, ok := h.Yardages[tee]; ok {
		return y
	}
	return h.Yardages[DefaultTeeColor]
}

// TeeBox is one set of tees on a course with its ratings
type TeeBox struct {
	Color        string  `json:"color" yaml:"color"`
	Name         string  `json:"name" yaml:"name"`
	CourseRating float64 `json:"course_rating" yaml:"course_rating"`
	SlopeRating  int     `json:"slope_rating" yaml:"slope_rating"`
	TotalYardage int     `json:"total_yardage,omitempty" yaml:"total_yardage,omitempty"`
	Par          int     `json:"par,omitempty" yaml:"par,omitempty"`
}

// Course is a golf course with its holes and tee boxes
type Course struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Location string   `json:"location,omitempty" yaml:"location,omitempty"`
	TeeBoxes []TeeBox `json:"tee_boxes" yaml:"tee_boxes"`
	Holes    []Hole   `json:"holes" yaml:"holes"`
	TotalPar int      `json:"total_par" yaml:"total_par"`
}

// HoleCount returns the number of holes in a round on this course
func (c *Course) HoleCount() int {
	return len(c.Holes)
}

// Hole returns the hole at the given 0-based index
func (c *Course) Hole(index int) (Hole, bool) {
	if index < 0 || index >= len(c.Holes) {
		return Hole{}, false
	}
	return c.Holes[index], true
}

// TeeBox returns the tee box with the given colour
func (c *Course) TeeBox(color string) (TeeBox, bool) {
	for _, t := range c.TeeBoxes {
		if t.Color == color {
			return t, true
		}
	}
	return TeeBox{}, false
}

// ReferencePar returns the course par used in course handicap calculations
func (c *Course) ReferencePar() int {
	if c.TotalPar > 0 {
		return c.TotalPar
	}
	return DefaultReferencePar
}

// ParFor sums hole pars from the given tee
func (c *Course) ParFor(tee string) int {
	total := 0
	for _, h := range c.Holes {
		total += h.ParFor(tee)
	}
	return total
}
