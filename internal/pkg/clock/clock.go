package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// In reports the wall time of c in loc. Day boundaries for a tenant are
// decided in its business zone, not in the host's.
func In(c Clock, loc *time.Location) Clock {
	if loc == nil {
		return c
	}
	return zoned{base: c, loc: loc}
}

type zoned struct {
	base Clock
	loc  *time.Location
}

func (z zoned) Now() time.Time {
	return z.base.Now().In(z.loc)
}

// MockClock is a settable clock for tests.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

func (c *MockClock) Set(t time.Time) {
	c.current = t
}

func (c *MockClock) Add(d time.Duration) {
	c.current = c.current.Add(d)
}
