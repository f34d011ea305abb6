package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Rounds are kept encoded, as the redis backend keeps them, so every
// GetRound hands out a private copy that a concurrent request cannot change.
type Storage struct {
	mu sync.RWMutex

	courses     map[string]*model.Course
	rounds      map[model.RoundID][]byte
	settlements map[model.RoundID]*model.Settlement
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		courses:     make(map[string]*model.Course),
		rounds:      make(map[model.RoundID][]byte),
		settlements: make(map[model.RoundID]*model.Settlement),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Course operations

func (s *Storage) SaveCourse(ctx context.Context, course *model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = course
	return nil
}

func (s *Storage) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.courses[id]
	if !ok {
		return nil, model.ErrCourseNotFound
	}
	return course, nil
}

func (s *Storage) ListCourses(ctx context.Context) ([]*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses := make([]*model.Course, 0, len(s.courses))
	for _, c := range s.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *Storage) DeleteCourse(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.courses, id)
	return nil
}

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.RoundState) error {
	data, err := json.Marshal(round)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[round.ID] = data
	return nil
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.RoundState, error) {
	s.mu.RLock()
	data, ok := s.rounds[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrRoundNotFound
	}
	var round model.RoundState
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, err
	}
	return &round, nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rounds, id)
	return nil
}

func (s *Storage) RoundExists(ctx context.Context, id model.RoundID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rounds[id]
	return ok, nil
}

// Settlement operations

func (s *Storage) SaveSettlement(ctx context.Context, settlement *model.Settlement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settlements[settlement.RoundID] = settlement
	return nil
}

func (s *Storage) GetSettlement(ctx context.Context, roundID model.RoundID) (*model.Settlement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settlement, ok := s.settlements[roundID]
	if !ok {
		return nil, model.ErrSettlementNotFound
	}
	return settlement, nil
}

func (s *Storage) DeleteSettlement(ctx context.Context, roundID model.RoundID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.settlements, roundID)
	return nil
}
