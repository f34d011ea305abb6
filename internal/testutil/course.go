package testutil

import (
	"fmt"

	"github.com/mcoot/golfscore/internal/model"
)

// ParkCoursePars are the pars of the test course, par 72
var ParkCoursePars = []int{4, 5, 4, 3, 4, 3, 4, 5, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5}

// ParkCourseStrokeIndex is the stroke index of each hole on the test course
var ParkCourseStrokeIndex = []int{7, 3, 11, 17, 1, 15, 9, 5, 13, 10, 2, 16, 6, 12, 8, 18, 4, 14}

// ParkCourse returns an 18-hole par 72 course with a neutral white tee and a
// harder blue tee
func ParkCourse() model.Course {
	holes := make([]model.Hole, 18)
	for i := range holes {
		holes[i] = model.Hole{
			Number:      i + 1,
			Name:        fmt.Sprintf("Hole %d", i+1),
			Par:         model.Uniform(ParkCoursePars[i]),
			StrokeIndex: model.Uniform(ParkCourseStrokeIndex[i]),
			Yardages:    map[string]int{"white": 350, "blue": 380},
		}
	}
	return model.Course{
		ID:       "park",
		Name:     "Park Links",
		Location: "Testville",
		TotalPar: 72,
		TeeBoxes: []model.TeeBox{
			{Color: "white", Name: "White Tees", CourseRating: 72.0, SlopeRating: 113, TotalYardage: 6300},
			{Color: "blue", Name: "Blue Tees", CourseRating: 74.0, SlopeRating: 130, TotalYardage: 6840},
		},
		Holes: holes,
	}
}

// Players returns players with the given names, all off the white tee with a zero handicap
func Players(names ...string) []model.Player {
	players := make([]model.Player, len(names))
	for i, n := range names {
		players[i] = model.Player{Name: n, TeeColor: "white"}
	}
	return players
}

// Gross returns a pointer to a gross score
func Gross(n int) *int {
	return &n
}
