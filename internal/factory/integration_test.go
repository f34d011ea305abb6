package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/round"
	"github.com/mcoot/golfscore/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestCourses())
}

func (s *IntegrationSuite) score(id model.RoundID, names []string, gross ...int) {
	for i, g := range gross {
		_, err := s.app.RoundController.RecordScore(s.ctx, id, names[i], g)
		s.Require().NoError(err)
	}
}

// Test: a three-ball plays the full round with six point, skins and Nassau
func (s *IntegrationSuite) TestThreeBallRound() {
	s.app.MockRandom.QueueString("THREE001")
	names := []string{"Ann", "Ben", "Cat"}

	state, err := s.app.RoundController.StartRound(s.ctx, round.Setup{
		CourseID: "park",
		Players:  testutil.Players(names...),
		Formats:  []model.Format{model.FormatSixPoint, model.FormatSkins, model.FormatNassau},
	})
	s.Require().NoError(err)

	var settlement *model.Settlement
	for hole := 1; hole <= 18; hole++ {
		// Ann wins every hole outright, Ben and Cat tie
		s.score(state.ID, names, 3, 4, 4)
		s.app.MockClock.Advance(12 * time.Minute)
		_, settlement, err = s.app.RoundController.AdvanceHole(s.ctx, state.ID)
		s.Require().NoError(err)
	}

	s.Require().NotNil(settlement)
	s.Equal(18, settlement.Results.Skins.Skins["Ann"])
	s.Equal(1, settlement.Results.Skins.Carryover)
	s.Equal(3, settlement.Results.Nassau.Points["Ann"].Total())
	s.Equal(36, settlement.Results.SixPoint.Totals["Ann"])
	s.Equal(0, settlement.Results.SixPoint.Totals["Ben"])
	s.Equal([]string{
		"Skins: Ann (18 skins)",
		"Nassau: Ann 3-0",
		"Six Point: Ann (36 pts) - 0-0",
	}, settlement.Winners)
	s.Equal(time.Date(2024, 1, 1, 15, 36, 0, 0, time.UTC), settlement.CompletedAt)

	stored, err := s.app.RoundController.GetSettlement(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Equal(settlement.Winners, stored.Winners)
}

// Test: a fourball match between two pairs closes out early
func (s *IntegrationSuite) TestFourballClosesOut() {
	s.app.MockRandom.QueueString("FOUR0001")
	names := []string{"A", "B", "C", "D"}
	teams := model.NewTeams([2]string{"A", "B"}, [2]string{"C", "D"})

	state, err := s.app.RoundController.StartRound(s.ctx, round.Setup{
		CourseID: "park",
		Players:  testutil.Players(names...),
		Formats:  []model.Format{model.FormatFourball},
		Teams:    &teams,
	})
	s.Require().NoError(err)

	for hole := 1; hole <= 10; hole++ {
		s.score(state.ID, names, 3, 5, 4, 4)
		_, _, err = s.app.RoundController.AdvanceHole(s.ctx, state.ID)
		s.Require().NoError(err)
	}

	lines, _, err := s.app.RoundController.Status(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Fourball: Team A wins 10&8"}, lines)
}

// Test: handicaps are applied from the player's tee
func (s *IntegrationSuite) TestHandicapStrokesFromTee() {
	s.app.MockRandom.QueueString("HCP00001")

	state, err := s.app.RoundController.StartRound(s.ctx, round.Setup{
		CourseID: "park",
		Players:  []model.Player{{Name: "Blue", HandicapIndex: 10, TeeColor: "blue"}},
	})
	s.Require().NoError(err)

	summary, err := s.app.CourseService.HandicapSummary(s.ctx, "park", "", state.Players)
	s.Require().NoError(err)
	s.Require().Len(summary.Players, 1)
	s.Equal(14, summary.Players[0].CourseHandicap)

	// Hole 1 has stroke index 7, so a 14 handicap gets a stroke
	state, err = s.app.RoundController.RecordScore(s.ctx, state.ID, "Blue", 5)
	s.Require().NoError(err)
	s.Equal(4, *state.Scores["Blue"][0].Net)
}
