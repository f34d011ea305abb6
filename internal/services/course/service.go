package course

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/handicap"
	"github.com/mcoot/golfscore/internal/storage"
)

// DefaultCourseID is the course used when a round is started without one
const DefaultCourseID = "augusta-springs"

//go:embed catalog/*.yaml
var catalogFS embed.FS

// Summary is the listing view of a course
type Summary struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Location string         `json:"location,omitempty"`
	Holes    int            `json:"holes"`
	TotalPar int            `json:"total_par"`
	TeeBoxes []model.TeeBox `json:"tee_boxes"`
}

// PlayerHandicap is a player's playing handicap on a course and the holes
// on which they receive (or give back) strokes
type PlayerHandicap struct {
	handicap.PlayingHandicap
	Strokes []int `json:"strokes"` // Strokes per hole, in hole order
}

// HandicapSummary lists the playing handicaps of a group on a course
type HandicapSummary struct {
	CourseID   string           `json:"course_id"`
	CourseName string           `json:"course_name"`
	Players    []PlayerHandicap `json:"players"`
}

// Service manages the course catalog
type Service struct {
	storage   storage.Storage
	converter *handicap.Converter
	logger    *slog.Logger
}

// New creates a new course Service
func New(storage storage.Storage, converter *handicap.Converter, logger *slog.Logger) *Service {
	return &Service{
		storage:   storage,
		converter: converter,
		logger:    logger,
	}
}

// LoadDefaults loads the built-in course catalog
func (s *Service) LoadDefaults(ctx context.Context) (int, error) {
	return s.loadFS(ctx, catalogFS, "catalog")
}

// Load loads courses from a file, or from every course file in a directory
func (s *Service) Load(ctx context.Context, path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return s.loadFS(ctx, os.DirFS(path), ".")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return s.loadData(ctx, path, data)
}

func (s *Service) loadFS(ctx context.Context, fsys fs.FS, dir string) (int, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range entries {
		if e.IsDir() || !isCourseFile(e.Name()) {
			continue
		}
		data, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(dir, e.Name())))
		if err != nil {
			return total, err
		}
		n, err := s.loadData(ctx, e.Name(), data)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func isCourseFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func (s *Service) loadData(ctx context.Context, name string, data []byte) (int, error) {
	courses, err := Parse(name, data)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", model.ErrInvalidCourse, name, err)
	}
	for i := range courses {
		if err := s.Save(ctx, &courses[i]); err != nil {
			return i, fmt.Errorf("%s: %w", name, err)
		}
	}
	s.logger.Info("courses loaded",
		slog.String("source", name),
		slog.Int("count", len(courses)),
	)
	return len(courses), nil
}

// Save validates and stores a course, replacing any course with the same ID
func (s *Service) Save(ctx context.Context, course *model.Course) error {
	if err := Validate(course); err != nil {
		return err
	}
	return s.storage.SaveCourse(ctx, course)
}

// Get returns a course by ID. An empty ID selects the default course.
func (s *Service) Get(ctx context.Context, id string) (*model.Course, error) {
	if id == "" {
		id = DefaultCourseID
	}
	return s.storage.GetCourse(ctx, id)
}

// List returns the courses whose name or location contains the query,
// ignoring case. An empty query lists every course.
func (s *Service) List(ctx context.Context, query string) ([]Summary, error) {
	courses, err := s.storage.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	summaries := []Summary{}
	for _, c := range courses {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Location), q) {
			continue
		}
		summaries = append(summaries, Summary{
			ID:       c.ID,
			Name:     c.Name,
			Location: c.Location,
			Holes:    c.HoleCount(),
			TotalPar: c.TotalPar,
			TeeBoxes: c.TeeBoxes,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// HandicapSummary resolves each player's playing handicap on a course. A
// non-empty tee overrides every player's own tee.
func (s *Service) HandicapSummary(ctx context.Context, courseID, tee string, players []model.Player) (*HandicapSummary, error) {
	course, err := s.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}

	summary := &HandicapSummary{
		CourseID:   course.ID,
		CourseName: course.Name,
		Players:    make([]PlayerHandicap, 0, len(players)),
	}
	for _, p := range players {
		if tee != "" {
			p.TeeColor = tee
		}
		ph := s.converter.ForPlayer(p, course)
		strokes := make([]int, course.HoleCount())
		for i := range strokes {
			strokes[i] = s.converter.StrokesFor(p, course, i)
		}
		summary.Players = append(summary.Players, PlayerHandicap{PlayingHandicap: ph, Strokes: strokes})
	}
	return summary, nil
}

// ServiceInterface defines the course catalog operations
type ServiceInterface interface {
	LoadDefaults(ctx context.Context) (int, error)
	Load(ctx context.Context, path string) (int, error)
	Save(ctx context.Context, course *model.Course) error
	Get(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context, query string) ([]Summary, error)
	HandicapSummary(ctx context.Context, courseID, tee string, players []model.Player) (*HandicapSummary, error)
}

var _ ServiceInterface = (*Service)(nil)
