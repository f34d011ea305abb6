// Package mocks holds controllable clock and random sources for tests
package mocks

import (
	"time"

	"github.com/mcoot/golfscore/internal/dependencies/clock"
	"github.com/mcoot/golfscore/internal/dependencies/random"
)

var (
	_ clock.Clock   = (*MockClock)(nil)
	_ random.Random = (*MockRandom)(nil)
)

// MockClock is a clock that only moves when told to
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward, e.g. by the time taken to play a hole
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// MockRandom hands out queued round IDs in order
type MockRandom struct {
	queued []string
	// Calls counts every String call, including those made after the queue ran dry
	Calls int
}

// NewMockRandom creates a MockRandom with nothing queued
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued value, or "" once the queue is empty
func (r *MockRandom) String(int, string) string {
	r.Calls++
	if len(r.queued) == 0 {
		return ""
	}
	next := r.queued[0]
	r.queued = r.queued[1:]
	return next
}

// QueueString adds values to the queue
func (r *MockRandom) QueueString(values ...string) {
	r.queued = append(r.queued, values...)
}
