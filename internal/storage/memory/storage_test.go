package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Course tests

func (s *StorageSuite) TestSaveAndGetCourse() {
	course := testutil.ParkCourse()

	err := s.storage.SaveCourse(s.ctx, &course)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCourse(s.ctx, "park")
	s.Require().NoError(err)
	s.Equal(course.Name, retrieved.Name)
	s.Equal(18, retrieved.HoleCount())
}

func (s *StorageSuite) TestGetCourseNotFound() {
	_, err := s.storage.GetCourse(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCourseNotFound)
}

func (s *StorageSuite) TestListCoursesSortedByID() {
	for _, id := range []string{"zeta", "alpha", "mid"} {
		course := testutil.ParkCourse()
		course.ID = id
		_ = s.storage.SaveCourse(s.ctx, &course)
	}

	courses, err := s.storage.ListCourses(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(courses, 3)
	s.Equal("alpha", courses[0].ID)
	s.Equal("mid", courses[1].ID)
	s.Equal("zeta", courses[2].ID)
}

func (s *StorageSuite) TestDeleteCourse() {
	course := testutil.ParkCourse()
	_ = s.storage.SaveCourse(s.ctx, &course)

	err := s.storage.DeleteCourse(s.ctx, "park")
	s.Require().NoError(err)

	_, err = s.storage.GetCourse(s.ctx, "park")
	s.ErrorIs(err, model.ErrCourseNotFound)
}

// Round tests

func (s *StorageSuite) TestSaveAndGetRound() {
	round := testutil.NewRound("A", "B")
	testutil.SetGross(round, "A", 1, 4)

	err := s.storage.SaveRound(s.ctx, round)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRound(s.ctx, "ROUND1")
	s.Require().NoError(err)
	s.Equal(round.ID, retrieved.ID)
	s.Equal(4, *retrieved.Score("A", 0).Gross)
}

func (s *StorageSuite) TestRoundsAreNotShared() {
	round := testutil.NewRound("A", "B")
	s.Require().NoError(s.storage.SaveRound(s.ctx, round))

	testutil.SetGross(round, "A", 1, 9)
	first, err := s.storage.GetRound(s.ctx, "ROUND1")
	s.Require().NoError(err)
	s.False(first.Score("A", 0).HasGross())

	first.CurrentHole = 7
	second, err := s.storage.GetRound(s.ctx, "ROUND1")
	s.Require().NoError(err)
	s.Equal(1, second.CurrentHole)
}

func (s *StorageSuite) TestGetRoundNotFound() {
	_, err := s.storage.GetRound(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRoundNotFound)
}

func (s *StorageSuite) TestRoundExists() {
	_ = s.storage.SaveRound(s.ctx, testutil.NewRound("A"))

	exists, err := s.storage.RoundExists(s.ctx, "ROUND1")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.storage.RoundExists(s.ctx, "NONEXISTENT")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestDeleteRound() {
	_ = s.storage.SaveRound(s.ctx, testutil.NewRound("A"))

	err := s.storage.DeleteRound(s.ctx, "ROUND1")
	s.Require().NoError(err)

	_, err = s.storage.GetRound(s.ctx, "ROUND1")
	s.ErrorIs(err, model.ErrRoundNotFound)
}

// Settlement tests

func (s *StorageSuite) TestSaveAndGetSettlement() {
	settlement := &model.Settlement{RoundID: "ROUND1", CourseName: "Park Links", Winners: []string{"Skins: A (2 skins)"}}

	err := s.storage.SaveSettlement(s.ctx, settlement)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSettlement(s.ctx, "ROUND1")
	s.Require().NoError(err)
	s.Equal(settlement.Winners, retrieved.Winners)
}

func (s *StorageSuite) TestGetSettlementNotFound() {
	_, err := s.storage.GetSettlement(s.ctx, "ROUND1")
	s.ErrorIs(err, model.ErrSettlementNotFound)
}

func (s *StorageSuite) TestDeleteSettlement() {
	_ = s.storage.SaveSettlement(s.ctx, &model.Settlement{RoundID: "ROUND1"})

	err := s.storage.DeleteSettlement(s.ctx, "ROUND1")
	s.Require().NoError(err)

	_, err = s.storage.GetSettlement(s.ctx, "ROUND1")
	s.ErrorIs(err, model.ErrSettlementNotFound)
}
