package clock

import "time"

// Clock supplies round timestamps and can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC so stored rounds compare equal
// regardless of the server's zone
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
