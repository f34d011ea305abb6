package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/handicap"
	"github.com/mcoot/golfscore/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	course  model.Course
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(handicap.NewConverter(handicap.ReferenceParCourse))
	s.course = testutil.ParkCourse()
}

// Stableford table

func (s *ServiceSuite) TestStablefordPoints() {
	cases := []struct {
		net, par, want int
	}{
		{1, 5, 5}, // better than albatross
		{2, 5, 5},
		{3, 5, 4},
		{3, 4, 3},
		{4, 4, 2},
		{5, 4, 1},
		{6, 4, 0},
		{9, 3, 0},
	}
	for _, c := range cases {
		s.Equal(c.want, StablefordPoints(c.net, c.par), "net %d par %d", c.net, c.par)
	}
}

func (s *ServiceSuite) TestNetScoreFloorsAtZero() {
	s.Equal(0, NetScore(1, 3))
	s.Equal(3, NetScore(4, 1))
	s.Equal(5, NetScore(4, -1))
}

// UpdateScore contract

func (s *ServiceSuite) TestUpdateScoreStablefordScenario() {
	score := s.service.UpdateScore(ScoreInput{
		Gross:         5,
		HoleIndex:     9,
		HandicapIndex: 18,
		Par:           4,
		StrokeIndex:   10,
		CourseRating:  72,
		SlopeRating:   113,
		ReferencePar:  72,
		Holes:         18,
	})

	s.Require().NotNil(score.Gross)
	s.Require().NotNil(score.Net)
	s.Equal(5, *score.Gross)
	s.Equal(4, *score.Net)
	s.Equal(2, score.Stableford)
}

func (s *ServiceSuite) TestUpdateScoreExtraStrokeForHighHandicap() {
	// Course handicap 24 gets a second stroke on stroke index 1..6
	score := s.service.UpdateScore(ScoreInput{
		Gross: 7, HoleIndex: 0, HandicapIndex: 24, Par: 4, StrokeIndex: 6,
		CourseRating: 72, SlopeRating: 113, ReferencePar: 72, Holes: 18,
	})
	s.Equal(5, *score.Net)
	s.Equal(1, score.Stableford)
}

func (s *ServiceSuite) TestUpdateScorePlusHandicapGivesStrokeBack() {
	score := s.service.UpdateScore(ScoreInput{
		Gross: 4, HoleIndex: 0, HandicapIndex: -2, Par: 4, StrokeIndex: 1,
		CourseRating: 72, SlopeRating: 113, ReferencePar: 72, Holes: 18,
	})
	s.Equal(5, *score.Net)
	s.Equal(1, score.Stableford)
}

func (s *ServiceSuite) TestUpdateScoreDefaultsMissingRatings() {
	score := s.service.UpdateScore(ScoreInput{Gross: 4, HoleIndex: 2, HandicapIndex: 3, Par: 4})
	// Neutral course, stroke index falls back to hole number 3
	s.Equal(3, *score.Net)
	s.Equal(3, score.Stableford)
}

func (s *ServiceSuite) TestNetNeverExceedsGrossForNonNegativeHandicaps() {
	for idx := 0.0; idx <= 54; idx += 4.5 {
		for gross := 1; gross <= model.MaxGrossScore; gross++ {
			for si := 1; si <= 18; si++ {
				score := s.service.UpdateScore(ScoreInput{
					Gross: gross, HandicapIndex: idx, Par: 4, StrokeIndex: si,
					CourseRating: 70.5, SlopeRating: 140, ReferencePar: 72, Holes: 18,
				})
				s.LessOrEqual(*score.Net, gross)
				s.GreaterOrEqual(*score.Net, 0)
			}
		}
	}
}

// ScoreHole resolution

func (s *ServiceSuite) TestScoreHoleUsesPlayersTee() {
	// Blue tee: 10 * 130 / 113 + (74 - 72) = 13.5 -> 14
	player := model.Player{Name: "Alice", HandicapIndex: 10, TeeColor: "blue"}

	// Hole 1 is stroke index 7: one stroke
	score := s.service.ScoreHole(player, &s.course, 0, 5)
	s.Equal(4, *score.Net)
	s.Equal(2, score.Stableford)

	// Hole 4 is stroke index 17: no stroke
	score = s.service.ScoreHole(player, &s.course, 3, 4)
	s.Equal(4, *score.Net)
	s.Equal(1, score.Stableford)
}

func (s *ServiceSuite) TestScoreHoleResolvesPerTeeValues() {
	s.course.Holes[0].Par = model.PerTee(map[string]int{"white": 4, "red": 5})
	s.course.Holes[0].StrokeIndex = model.PerTee(map[string]int{"white": 7, "red": 1})
	red := model.Player{Name: "Bea", HandicapIndex: 1, TeeColor: "red"}

	// Unknown red tee box rates as neutral: course handicap 1, stroke on SI 1
	score := s.service.ScoreHole(red, &s.course, 0, 6)
	s.Equal(5, *score.Net)
	s.Equal(2, score.Stableford)
}

func (s *ServiceSuite) TestScoreHoleOutOfRange() {
	score := s.service.ScoreHole(model.Player{Name: "A"}, &s.course, 18, 4)
	s.False(score.HasGross())
}

func (s *ServiceSuite) TestRescoreSkipsEmptyHoles() {
	player := model.Player{Name: "Alice", HandicapIndex: 18}
	scores := make([]model.HoleScore, 18)
	scores[0] = model.NewHoleScore(5, 5, 0)
	scores[2] = model.NewHoleScore(6, 6, 0)

	out := s.service.Rescore(player, &s.course, scores)

	s.Equal(4, *out[0].Net)
	s.False(out[1].HasGross())
	s.Equal(5, *out[2].Net)
}
