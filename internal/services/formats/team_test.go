package formats

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/testutil"
)

type TeamSuite struct {
	suite.Suite
	names []string
	teams model.Teams
	state *model.RoundState
}

func TestTeamSuite(t *testing.T) {
	suite.Run(t, new(TeamSuite))
}

func (s *TeamSuite) SetupTest() {
	s.names = []string{"Ann", "Bob", "Cat", "Dan"}
	s.teams = model.NewTeams([2]string{"Ann", "Bob"}, [2]string{"Cat", "Dan"})
	s.state = testutil.NewRound(s.names...)
	s.state.Teams = &s.teams
}

func (s *TeamSuite) TestFourballBetterBall() {
	testutil.SetHole(s.state, 1, s.names, 5, 4, 4, 6)
	testutil.SetHole(s.state, 2, s.names, 3, 5, 4, 4)
	s.state.CurrentHole = 2

	result := Fourball(s.state.Players, s.state, &s.teams)

	s.True(result.Applicable)
	s.Equal(2, result.HolesPlayed)
	s.Equal(1, result.TeamA.HolesWon)
	s.Equal(0, result.TeamB.HolesWon)
	s.Equal([]model.HoleOutcome{{Hole: 1}, {Hole: 2, Winner: "Team A"}}, result.Holes)
}

func (s *TeamSuite) TestFourballUsesNetScores() {
	testutil.SetScore(s.state, "Ann", 1, 5, 3)
	testutil.SetScore(s.state, "Bob", 1, 6, 6)
	testutil.SetHole(s.state, 1, s.names[2:], 4, 4)

	result := Fourball(s.state.Players, s.state, &s.teams)

	s.Equal(1, result.TeamA.HolesWon)
}

func (s *TeamSuite) TestFourballSkipsHoleWithoutBothSides() {
	testutil.SetHole(s.state, 1, s.names[:2], 4, 4)
	testutil.SetHole(s.state, 2, s.names, 4, 4, 4, 3)
	testutil.SetGross(s.state, "Bob", 2, 5)
	s.state.CurrentHole = 2

	result := Fourball(s.state.Players, s.state, &s.teams)

	s.Equal(1, result.HolesPlayed)
	s.Equal(1, result.TeamB.HolesWon)
}

func (s *TeamSuite) TestFoursomesUsesNominatedPlayer() {
	s.teams.TeamB.FoursomesPlayer = "Dan"
	testutil.SetHole(s.state, 1, s.names, 4, 3, 2, 5)

	result := Foursomes(s.state.Players, s.state, &s.teams)

	s.Equal(1, result.TeamA.HolesWon)
	s.Equal(0, result.TeamB.HolesWon)
}

func (s *TeamSuite) TestFoursomesDefaultsToFirstPlayer() {
	testutil.SetHole(s.state, 1, s.names, 4, 3, 2, 5)

	result := Foursomes(s.state.Players, s.state, &s.teams)

	s.Equal(1, result.TeamB.HolesWon)
}

func (s *TeamSuite) TestScrambleSumsBestGross() {
	testutil.SetScore(s.state, "Ann", 1, 5, 2)
	testutil.SetScore(s.state, "Bob", 1, 4, 4)
	testutil.SetHole(s.state, 1, s.names[2:], 4, 6)
	testutil.SetHole(s.state, 2, s.names, 3, 5, 4, 4)
	s.state.CurrentHole = 2

	result := Scramble(s.state.Players, s.state, &s.teams)

	s.True(result.Applicable)
	s.Equal(2, result.HolesPlayed)
	s.Equal(7, result.TeamA.TotalScore)
	s.Equal(8, result.TeamB.TotalScore)
}

func (s *TeamSuite) TestTeamFormatsNeedFourPlayersAndTeams() {
	three := testutil.NewRound("Ann", "Bob", "Cat")

	s.False(Fourball(three.Players, three, &s.teams).Applicable)
	s.False(Foursomes(s.state.Players, s.state, nil).Applicable)
	s.False(Scramble(s.state.Players, s.state, nil).Applicable)

	bad := model.NewTeams([2]string{"Ann", "Ann"}, [2]string{"Cat", "Dan"})
	s.False(Fourball(s.state.Players, s.state, &bad).Applicable)
}

type MatchPlaySuite struct {
	suite.Suite
	names []string
	state *model.RoundState
}

func TestMatchPlaySuite(t *testing.T) {
	suite.Run(t, new(MatchPlaySuite))
}

func (s *MatchPlaySuite) SetupTest() {
	s.names = []string{"A", "B"}
	s.state = testutil.NewRound(s.names...)
}

func (s *MatchPlaySuite) TestHolesWon() {
	testutil.SetHole(s.state, 1, s.names, 4, 5)
	testutil.SetHole(s.state, 2, s.names, 4, 4)
	testutil.SetHole(s.state, 3, s.names, 6, 5)
	testutil.SetHole(s.state, 4, s.names, 3, 5)
	s.state.CurrentHole = 4

	result := MatchPlay(s.state.Players, s.state)

	s.True(result.Applicable)
	s.Equal([2]string{"A", "B"}, result.Players)
	s.Equal([2]int{2, 1}, result.HolesWon)
	s.Equal(4, result.HolesPlayed)
}

func (s *MatchPlaySuite) TestHoleNeedsBothScores() {
	testutil.SetGross(s.state, "A", 1, 4)
	s.state.CurrentHole = 2

	result := MatchPlay(s.state.Players, s.state)

	s.Zero(result.HolesPlayed)
}

func (s *MatchPlaySuite) TestNotApplicableWithThreePlayers() {
	state := testutil.NewRound("A", "B", "C")

	s.False(MatchPlay(state.Players, state).Applicable)
}
