package clock

import (
	"fmt"
	"sync"
	"time"
)

// Clock supplies "now" to prompt building and audit records.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock returns a settable instant. Safe for concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewFakeClock creates a FakeClock reading t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set replaces the current time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance moves the current time by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// Pinned returns a clock fixed at midnight UTC of day (YYYY-MM-DD), or the
// system clock when day is empty.
func Pinned(day string) (Clock, error) {
	if day == "" {
		return RealClock{}, nil
	}
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return nil, fmt.Errorf("parse pinned date %q: %w", day, err)
	}
	return NewFakeClock(t), nil
}
