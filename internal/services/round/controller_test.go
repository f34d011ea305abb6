package round

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/golfscore/internal/dependencies/mocks"
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/course"
	"github.com/mcoot/golfscore/internal/services/formats"
	"github.com/mcoot/golfscore/internal/services/handicap"
	"github.com/mcoot/golfscore/internal/services/scoring"
	"github.com/mcoot/golfscore/internal/services/status"
	"github.com/mcoot/golfscore/internal/storage/memory"
	"github.com/mcoot/golfscore/internal/testutil"
)

type recordingMetrics struct {
	started   int
	recorded  int
	rejected  []string
	advanced  int
	completed []float64
	abandoned int
}

func (m *recordingMetrics) RoundStarted(int, []model.Format) { m.started++ }
func (m *recordingMetrics) ScoreRecorded()                   { m.recorded++ }
func (m *recordingMetrics) ScoreRejected(reason string)      { m.rejected = append(m.rejected, reason) }
func (m *recordingMetrics) HoleAdvanced()                    { m.advanced++ }
func (m *recordingMetrics) RoundCompleted(d float64)         { m.completed = append(m.completed, d) }
func (m *recordingMetrics) RoundAbandoned()                  { m.abandoned++ }

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	metrics    *recordingMetrics
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(testutil.FixedTime)
	s.random = mocks.NewMockRandom()
	s.metrics = &recordingMetrics{}

	converter := handicap.NewConverter(handicap.ReferenceParCourse)
	courses := course.New(s.storage, converter, testutil.NopLogger())
	park := testutil.ParkCourse()
	s.Require().NoError(courses.Save(s.ctx, &park))

	engine := formats.NewEngine(formats.Options{Observer: NewLogObserver(testutil.NopLogger())})
	s.controller = NewController(
		s.storage,
		courses,
		scoring.New(converter),
		engine,
		status.New(engine),
		s.metrics,
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
}

func (s *ControllerSuite) start(formats []model.Format, names ...string) *model.RoundState {
	s.random.QueueString("ROUND001")
	state, err := s.controller.StartRound(s.ctx, Setup{
		CourseID: "park",
		Players:  testutil.Players(names...),
		Formats:  formats,
	})
	s.Require().NoError(err)
	return state
}

// playHole scores the current hole for each player in roster order and moves on
func (s *ControllerSuite) playHole(id model.RoundID, names []string, gross ...int) {
	for i, g := range gross {
		_, err := s.controller.RecordScore(s.ctx, id, names[i], g)
		s.Require().NoError(err)
	}
	_, _, err := s.controller.AdvanceHole(s.ctx, id)
	s.Require().NoError(err)
}

// StartRound tests

func (s *ControllerSuite) TestStartRoundSucceeds() {
	state := s.start([]model.Format{model.FormatSkins, model.FormatNassau, model.FormatSkins}, "A", "B")

	s.Equal(model.RoundID("ROUND001"), state.ID)
	s.Equal("park", state.Course.ID)
	s.Equal(1, state.CurrentHole)
	s.Equal(model.RoundStatusInProgress, state.Status)
	s.Equal([]model.Format{model.FormatSkins, model.FormatNassau}, state.Formats)
	s.Len(state.Scores["A"], 18)
	s.Len(state.Confirmed, 18)
	s.Equal(testutil.FixedTime, state.CreatedAt)
	s.Equal(1, s.metrics.started)

	stored, err := s.controller.GetRound(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Equal(state.ID, stored.ID)
}

func (s *ControllerSuite) TestStartRoundTrimsNames() {
	s.random.QueueString("ROUND001")
	state, err := s.controller.StartRound(s.ctx, Setup{
		CourseID: "park",
		Players:  []model.Player{{Name: "  Alice "}, {Name: "Bob", TeeColor: "Blue"}},
	})
	s.Require().NoError(err)

	s.Equal([]string{"Alice", "Bob"}, model.PlayerNames(state.Players))
	s.Equal("blue", state.Players[1].TeeColor)
}

func (s *ControllerSuite) TestStartRoundRegeneratesTakenID() {
	s.start(nil, "A")

	s.random.QueueString("ROUND001", "ROUND002")
	state, err := s.controller.StartRound(s.ctx, Setup{CourseID: "park", Players: testutil.Players("B")})
	s.Require().NoError(err)
	s.Equal(model.RoundID("ROUND002"), state.ID)
	s.Equal(3, s.random.Calls)
}

func (s *ControllerSuite) TestStartRoundFailsWithoutID() {
	_, err := s.controller.StartRound(s.ctx, Setup{CourseID: "park", Players: testutil.Players("A")})
	s.ErrorIs(err, ErrIDExhausted)
	s.Equal(maxIDAttempts, s.random.Calls)
}

func (s *ControllerSuite) TestStartRoundValidation() {
	teams := model.NewTeams([2]string{"A", "B"}, [2]string{"C", "D"})
	badTeams := model.NewTeams([2]string{"A", "B"}, [2]string{"C", "X"})

	cases := []struct {
		name  string
		setup Setup
		err   error
	}{
		{"no players", Setup{CourseID: "park"}, model.ErrInvalidRoster},
		{"too many players", Setup{CourseID: "park", Players: testutil.Players("A", "B", "C", "D", "E")}, model.ErrInvalidRoster},
		{"blank name", Setup{CourseID: "park", Players: testutil.Players("A", " ")}, model.ErrInvalidRoster},
		{"duplicate name", Setup{CourseID: "park", Players: testutil.Players("A", "A")}, model.ErrDuplicatePlayer},
		{"unknown format", Setup{CourseID: "park", Players: testutil.Players("A", "B"), Formats: []model.Format{"bingo"}}, model.ErrUnknownFormat},
		{"six point needs three", Setup{CourseID: "park", Players: testutil.Players("A", "B"), Formats: []model.Format{model.FormatSixPoint}}, model.ErrFormatNotAvailable},
		{"solo formats", Setup{CourseID: "park", Players: testutil.Players("A"), Formats: []model.Format{model.FormatSkins}}, model.ErrFormatNotAvailable},
		{"teams missing", Setup{CourseID: "park", Players: testutil.Players("A", "B", "C", "D"), Formats: []model.Format{model.FormatFourball}}, model.ErrTeamsRequired},
		{"teams invalid", Setup{CourseID: "park", Players: testutil.Players("A", "B", "C", "D"), Formats: []model.Format{model.FormatFourball}, Teams: &badTeams}, model.ErrInvalidTeams},
		{"teams with wrong roster", Setup{CourseID: "park", Players: testutil.Players("A", "B", "C"), Teams: &teams}, model.ErrInvalidTeams},
		{"unknown course", Setup{CourseID: "nowhere", Players: testutil.Players("A")}, model.ErrCourseNotFound},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.random.QueueString("ROUNDXYZ")
			_, err := s.controller.StartRound(s.ctx, tc.setup)
			s.ErrorIs(err, tc.err)
		})
	}
	s.Equal(0, s.metrics.started)
}

func (s *ControllerSuite) TestStartRoundWithTeamsFillsNames() {
	teams := model.Teams{
		TeamA: model.Team{Players: [2]string{"A", "C"}},
		TeamB: model.Team{Name: "Visitors", Players: [2]string{"B", "D"}},
	}
	s.random.QueueString("ROUND001")
	state, err := s.controller.StartRound(s.ctx, Setup{
		CourseID: "park",
		Players:  testutil.Players("A", "B", "C", "D"),
		Formats:  []model.Format{model.FormatFourball, model.FormatScramble},
		Teams:    &teams,
	})
	s.Require().NoError(err)

	s.Require().NotNil(state.Teams)
	s.Equal("Team A", state.Teams.TeamA.Name)
	s.Equal("Visitors", state.Teams.TeamB.Name)
	s.NotNil(state.Results.Fourball)
	s.NotNil(state.Results.Scramble)
}

// Score entry tests

func (s *ControllerSuite) TestRecordScoreDerivesNetAndStableford() {
	s.random.QueueString("ROUND001")
	state, err := s.controller.StartRound(s.ctx, Setup{
		CourseID: "park",
		Players:  []model.Player{{Name: "A", HandicapIndex: 18, TeeColor: "white"}},
	})
	s.Require().NoError(err)

	s.clock.Advance(5 * time.Minute)
	state, err = s.controller.RecordScore(s.ctx, state.ID, "A", 5)
	s.Require().NoError(err)

	score := state.Scores["A"][0]
	s.Require().True(score.HasGross())
	s.Equal(5, *score.Gross)
	s.Equal(4, *score.Net)
	s.Equal(2, score.Stableford)
	s.Equal(testutil.FixedTime.Add(5*time.Minute), state.UpdatedAt)
	s.Equal(1, s.metrics.recorded)
}

func (s *ControllerSuite) TestRecordScoreRejectsOutOfRangeGross() {
	state := s.start(nil, "A")

	for _, gross := range []int{0, -1, 16} {
		_, err := s.controller.RecordScore(s.ctx, state.ID, "A", gross)
		s.ErrorIs(err, model.ErrInvalidGrossScore)
	}
	for _, gross := range []int{1, 15} {
		_, err := s.controller.RecordScore(s.ctx, state.ID, "A", gross)
		s.NoError(err)
	}
	s.Equal([]string{"invalid_gross", "invalid_gross", "invalid_gross"}, s.metrics.rejected)
}

func (s *ControllerSuite) TestRecordScoreUnknownPlayer() {
	state := s.start(nil, "A")

	_, err := s.controller.RecordScore(s.ctx, state.ID, "Z", 4)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestRecordScoreUnknownRound() {
	_, err := s.controller.RecordScore(s.ctx, "MISSING", "A", 4)
	s.ErrorIs(err, model.ErrRoundNotFound)
}

func (s *ControllerSuite) TestAmendScoreRejectsHolesNotReached() {
	state := s.start(nil, "A")
	s.playHole(state.ID, []string{"A"}, 4)

	_, err := s.controller.AmendScore(s.ctx, state.ID, "A", 3, 4)
	s.ErrorIs(err, model.ErrInvalidHole)
	_, err = s.controller.AmendScore(s.ctx, state.ID, "A", 0, 4)
	s.ErrorIs(err, model.ErrInvalidHole)

	_, err = s.controller.AmendScore(s.ctx, state.ID, "A", 2, 4)
	s.NoError(err)
}

func (s *ControllerSuite) TestAmendEarlierHoleReplaysFormats() {
	names := []string{"A", "B", "C"}
	state := s.start([]model.Format{model.FormatSkins}, names...)
	s.playHole(state.ID, names, 4, 4, 5)
	s.playHole(state.ID, names, 3, 5, 5)

	state, err := s.controller.GetRound(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Equal(2, state.Results.Skins.Skins["A"])

	state, err = s.controller.AmendScore(s.ctx, state.ID, "B", 1, 3)
	s.Require().NoError(err)

	s.Equal(1, state.Results.Skins.Skins["B"])
	s.Equal(1, state.Results.Skins.Skins["A"])
	s.Equal(1, state.Results.Skins.Carryover)
}

// Hole navigation tests

func (s *ControllerSuite) TestConfirmHoleToggles() {
	state := s.start(nil, "A")

	state, err := s.controller.ConfirmHole(s.ctx, state.ID)
	s.Require().NoError(err)
	s.True(state.Confirmed[0])

	state, err = s.controller.ConfirmHole(s.ctx, state.ID)
	s.Require().NoError(err)
	s.False(state.Confirmed[0])
}

func (s *ControllerSuite) TestAdvanceAndPreviousHole() {
	names := []string{"A", "B"}
	state := s.start([]model.Format{model.FormatMatchPlay}, names...)

	_, err := s.controller.PreviousHole(s.ctx, state.ID)
	s.ErrorIs(err, model.ErrInvalidHole)

	s.playHole(state.ID, names, 3, 4)
	state, err = s.controller.GetRound(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Equal(2, state.CurrentHole)
	s.Equal([2]int{1, 0}, state.Results.MatchPlay.HolesWon)
	s.Equal(1, s.metrics.advanced)

	state, err = s.controller.PreviousHole(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Equal(1, state.CurrentHole)
	s.Equal(3, state.Score("A", 0).Stableford)
}

func (s *ControllerSuite) TestAdvancingPastLastHoleSettlesRound() {
	state := s.start(nil, "A")
	for hole := 1; hole < 18; hole++ {
		s.playHole(state.ID, []string{"A"}, 4)
	}

	_, err := s.controller.RecordScore(s.ctx, state.ID, "A", 5)
	s.Require().NoError(err)
	s.clock.Advance(4 * time.Hour)
	state, settlement, err := s.controller.AdvanceHole(s.ctx, state.ID)
	s.Require().NoError(err)

	s.Require().NotNil(settlement)
	s.Equal(19, state.CurrentHole)
	s.True(state.IsComplete())
	s.Equal(4*17+5, settlement.Totals[0].Total.Gross)
	s.Equal([]string{"A: 73 strokes"}, settlement.StatusLines)
	s.Equal([]float64{4 * 3600}, s.metrics.completed)

	stored, err := s.controller.GetSettlement(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Equal(settlement.CompletedAt, stored.CompletedAt)
}

// Status tests

func (s *ControllerSuite) TestStatus() {
	names := []string{"A", "B", "C"}
	state := s.start([]model.Format{model.FormatSixPoint, model.FormatSkins}, names...)
	s.playHole(state.ID, names, 4, 4, 5)

	lines, totals, err := s.controller.Status(s.ctx, state.ID)
	s.Require().NoError(err)

	s.Equal([]string{"No skins won yet", "Six Point: Tied 3-3-0"}, lines)
	s.Require().Len(totals, 3)
	s.Equal("A", totals[0].Name)
	s.Equal(4, totals[0].GrossTotal)
	s.Equal(3, totals[0].SixPointTotal)
	s.Equal(0, totals[2].SixPointTotal)
}

func (s *ControllerSuite) TestComputeFormat() {
	names := []string{"A", "B"}
	state := s.start(nil, names...)
	s.playHole(state.ID, names, 3, 4)

	result, err := s.controller.ComputeFormat(s.ctx, state.ID, model.FormatMatchPlay)
	s.Require().NoError(err)
	match, ok := result.(model.MatchPlayResult)
	s.Require().True(ok)
	s.Equal([2]int{1, 0}, match.HolesWon)

	_, err = s.controller.ComputeFormat(s.ctx, state.ID, "bingo")
	s.ErrorIs(err, model.ErrUnknownFormat)
}

// Completion tests

func (s *ControllerSuite) TestCompleteRoundClosesOutMatch() {
	names := []string{"A", "B"}
	state := s.start([]model.Format{model.FormatMatchPlay, model.FormatSkins}, names...)
	for hole := 1; hole <= 15; hole++ {
		if hole <= 4 {
			s.playHole(state.ID, names, 3, 4)
		} else {
			s.playHole(state.ID, names, 4, 4)
		}
	}

	lines, _, err := s.controller.Status(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Contains(lines, "A wins 4&3")

	settlement, err := s.controller.CompleteRound(s.ctx, state.ID)
	s.Require().NoError(err)

	s.Equal("park", settlement.CourseID)
	s.Equal("Park Links", settlement.CourseName)
	s.Equal([]string{"Match Play: A wins 4-Up", "Skins: A (4 skins)"}, settlement.Winners)
	s.Require().NotNil(settlement.Results.MatchPlay)
	s.Equal(15, settlement.Results.MatchPlay.HolesPlayed)
	s.Len(settlement.Scores["A"], 18)
}

func (s *ControllerSuite) TestCompletedRoundRejectsChanges() {
	state := s.start(nil, "A")
	_, err := s.controller.CompleteRound(s.ctx, state.ID)
	s.Require().NoError(err)

	_, err = s.controller.RecordScore(s.ctx, state.ID, "A", 4)
	s.ErrorIs(err, model.ErrRoundComplete)
	_, err = s.controller.AmendScore(s.ctx, state.ID, "A", 1, 4)
	s.ErrorIs(err, model.ErrRoundComplete)
	_, err = s.controller.ConfirmHole(s.ctx, state.ID)
	s.ErrorIs(err, model.ErrRoundComplete)
	_, _, err = s.controller.AdvanceHole(s.ctx, state.ID)
	s.ErrorIs(err, model.ErrRoundComplete)
	_, err = s.controller.PreviousHole(s.ctx, state.ID)
	s.ErrorIs(err, model.ErrRoundComplete)
	_, err = s.controller.CompleteRound(s.ctx, state.ID)
	s.ErrorIs(err, model.ErrRoundComplete)
	s.ErrorIs(s.controller.AbandonRound(s.ctx, state.ID), model.ErrRoundComplete)
}

func (s *ControllerSuite) TestSettlementMissingBeforeCompletion() {
	state := s.start(nil, "A")

	_, err := s.controller.GetSettlement(s.ctx, state.ID)
	s.ErrorIs(err, model.ErrSettlementNotFound)
}

func (s *ControllerSuite) TestAbandonRoundDeletes() {
	state := s.start(nil, "A")

	s.Require().NoError(s.controller.AbandonRound(s.ctx, state.ID))

	_, err := s.controller.GetRound(s.ctx, state.ID)
	s.ErrorIs(err, model.ErrRoundNotFound)
	s.Equal(1, s.metrics.abandoned)
}

func (s *ControllerSuite) TestConcurrentScoresOnOneRound() {
	names := []string{"A", "B", "C", "D"}
	state := s.start([]model.Format{model.FormatSkins}, names...)

	var wg sync.WaitGroup
	errs := make([]error, len(names))
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.controller.RecordScore(s.ctx, state.ID, name, 4+i)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		s.NoError(err)
	}
	stored, err := s.controller.GetRound(s.ctx, state.ID)
	s.Require().NoError(err)
	for i, name := range names {
		s.Require().True(stored.Score(name, 0).HasGross(), name)
		s.Equal(4+i, *stored.Score(name, 0).Gross, name)
	}
	s.Equal(len(names), s.metrics.recorded)
}
