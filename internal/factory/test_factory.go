package factory

import (
	"context"
	"time"

	"github.com/mcoot/golfscore/internal/dependencies/mocks"
	"github.com/mcoot/golfscore/internal/storage/memory"
	"github.com/mcoot/golfscore/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The built-in catalog is not loaded; see LoadTestCourses.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, Config{}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestCourses loads the built-in catalog plus the park course used
// throughout the tests
func (t *TestApp) LoadTestCourses() error {
	ctx := context.Background()
	if _, err := t.CourseService.LoadDefaults(ctx); err != nil {
		return err
	}
	park := testutil.ParkCourse()
	return t.CourseService.Save(ctx, &park)
}
