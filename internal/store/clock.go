package store

import "time"

// Clock hands out task ids from wall-clock milliseconds.
// When the clock has not moved past the last id it returns last+1,
// so ids always increase within a process.
type Clock struct {
	now  func() time.Time
	last int64
}

// NewClock returns a Clock reading now, or time.Now when nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Next returns an id greater than every id returned before.
func (c *Clock) Next() int64 {
	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}
