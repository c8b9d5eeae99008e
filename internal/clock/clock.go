package clock

import "time"

// Clock provides the current time. Visit timestamps and the rolling
// badge window both depend on it, so tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system clock
type Real struct{}

// New creates a system-clock Clock
func New() *Real {
	return &Real{}
}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a settable instant, for tests
type Fixed struct {
	Current time.Time
}

var _ Clock = (*Fixed)(nil)

// NewFixed creates a Fixed clock set to the given time
func NewFixed(t time.Time) *Fixed {
	return &Fixed{Current: t}
}

// Now returns the pinned time
func (c *Fixed) Now() time.Time {
	return c.Current
}

// Advance moves the pinned time forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

// Set pins the clock to the given time
func (c *Fixed) Set(t time.Time) {
	c.Current = t
}
