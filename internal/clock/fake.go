package clock

import "time"

// FakeClock pins Now to a fixed instant so tests can assert on report
// calendar windows (day, week, month, year boundaries) deterministically.
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a clock frozen at t. The instant is normalized to
// UTC because report windows are computed in UTC.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the frozen instant forward, e.g. to cross a window
// boundary mid-test.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
