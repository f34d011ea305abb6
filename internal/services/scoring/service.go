package scoring

import (
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/handicap"
)

// ScoreInput carries everything needed to score one gross score on one hole
type ScoreInput struct {
	Gross         int
	HoleIndex     int // 0-based
	HandicapIndex float64
	Par           int
	StrokeIndex   int
	CourseRating  float64
	SlopeRating   int
	ReferencePar  int
	Holes         int // Holes in the round, normally 18
}

// Service derives net scores and Stableford points from gross scores
type Service struct {
	converter *handicap.Converter
}

// New creates a new scoring Service
func New(converter *handicap.Converter) *Service {
	return &Service{
		converter: converter,
	}
}

// NetScore subtracts handicap strokes from a gross score, never going below zero
func NetScore(gross, strokes int) int {
	return max(0, gross-strokes)
}

// StablefordPoints awards points for a net score relative to par
func StablefordPoints(net, par int) int {
	toPar := net - par
	switch {
	case toPar <= -3:
		return 5 // Albatross or better
	case toPar == -2:
		return 4
	case toPar == -1:
		return 3
	case toPar == 0:
		return 2
	case toPar == 1:
		return 1
	default:
		return 0 // Double bogey or worse
	}
}

// UpdateScore scores a single cell of the grid from raw inputs
func (s *Service) UpdateScore(in ScoreInput) model.HoleScore {
	holes := in.Holes
	if holes <= 0 {
		holes = model.StandardHoles
	}
	strokeIndex := in.StrokeIndex
	if strokeIndex <= 0 {
		strokeIndex = in.HoleIndex + 1
	}
	slope := in.SlopeRating
	if slope <= 0 {
		slope = model.NeutralSlope
	}
	rating := in.CourseRating
	if rating == 0 {
		rating = model.DefaultCourseRating
	}
	refPar := in.ReferencePar
	if refPar <= 0 {
		refPar = model.DefaultReferencePar
	}

	courseHandicap := handicap.CourseHandicap(in.HandicapIndex, slope, rating, refPar)
	strokes := handicap.StrokesOnHole(courseHandicap, strokeIndex, holes)
	net := NetScore(in.Gross, strokes)
	return model.NewHoleScore(in.Gross, net, StablefordPoints(net, in.Par))
}

// ScoreHole scores a player's gross score on a 0-based hole of the course,
// resolving par, stroke index and tee ratings for the player's tee
func (s *Service) ScoreHole(player model.Player, course *model.Course, holeIndex, gross int) model.HoleScore {
	hole, ok := course.Hole(holeIndex)
	if !ok {
		return model.HoleScore{}
	}
	tee := player.Tee()
	rating, slope := handicap.Ratings(course, tee)
	return s.UpdateScore(ScoreInput{
		Gross:         gross,
		HoleIndex:     holeIndex,
		HandicapIndex: player.HandicapIndex,
		Par:           hole.ParFor(tee),
		StrokeIndex:   hole.StrokeIndexFor(tee),
		CourseRating:  rating,
		SlopeRating:   slope,
		ReferencePar:  s.converter.ReferenceParFor(course),
		Holes:         course.HoleCount(),
	})
}

// Rescore recomputes net and Stableford for every entered score of a player.
// Used when a player's handicap or tee is corrected before play continues.
func (s *Service) Rescore(player model.Player, course *model.Course, scores []model.HoleScore) []model.HoleScore {
	out := make([]model.HoleScore, len(scores))
	for i, sc := range scores {
		if !sc.HasGross() {
			continue
		}
		out[i] = s.ScoreHole(player, course, i, *sc.Gross)
	}
	return out
}

// Interface for dependency injection
type ServiceInterface interface {
	UpdateScore(in ScoreInput) model.HoleScore
	ScoreHole(player model.Player, course *model.Course, holeIndex, gross int) model.HoleScore
	Rescore(player model.Player, course *model.Course, scores []model.HoleScore) []model.HoleScore
}

var _ ServiceInterface = (*Service)(nil)
