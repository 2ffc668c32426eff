package viewer

import "time"

// Clock measures wall time between Delta calls while running. A stopped
// clock reports zero, so paused playback consumes no time.
type Clock struct {
	now     func() time.Time
	running bool
	last    time.Time
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

func (c *Clock) Start() {
	c.running = true
	c.last = c.now()
}

func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Running() bool { return c.running }

// Delta returns the seconds since the previous Delta or Start.
func (c *Clock) Delta() float64 {
	if !c.running {
		return 0
	}
	now := c.now()
	d := now.Sub(c.last).Seconds()
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}
