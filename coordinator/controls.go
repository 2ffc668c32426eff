package coordinator

import "fmt"

// FormatTime renders the shared time label.
func FormatTime(current, duration float64) string {
	return fmt.Sprintf("%.2f / %.2f s", current, duration)
}

// Refresh pushes the active viewer's playback state into the shared
// controls. Without an active viewer the controls are disabled.
func (c *Coordinator) Refresh() {
	if c.controls == nil {
		return
	}
	v := c.active
	if v == nil {
		c.controls.SetPlaying(false)
		c.controls.SetSeek(1, 0, true)
		c.controls.SetTimeLabel(FormatTime(0, 0))
		return
	}
	d := v.Duration()
	limit := d
	if limit <= 0 {
		limit = 1
	}
	c.controls.SetPlaying(v.Playing())
	c.controls.SetSeek(limit, v.Time(), d == 0)
	c.controls.SetTimeLabel(FormatTime(v.Time(), d))
}

func (c *Coordinator) TogglePlay() {
	if c.active == nil {
		return
	}
	c.active.Toggle()
	c.Refresh()
}

func (c *Coordinator) StepForward() {
	c.step(c.stepSeconds)
}

func (c *Coordinator) StepBackward() {
	c.step(-c.stepSeconds)
}

func (c *Coordinator) step(seconds float64) {
	if c.active == nil {
		return
	}
	c.active.Step(seconds)
	c.Refresh()
}

// PreviewSeek updates the label while the seek handle is dragged. The
// viewer is left untouched until Seek.
func (c *Coordinator) PreviewSeek(t float64) {
	if c.active == nil || c.controls == nil {
		return
	}
	c.previewing = true
	c.controls.SetTimeLabel(FormatTime(t, c.active.Duration()))
}

// Seek commits a seek on the active viewer.
func (c *Coordinator) Seek(t float64) {
	c.previewing = false
	if c.active == nil {
		return
	}
	c.active.SetTime(t)
	c.Refresh()
}

func (c *Coordinator) Previewing() bool { return c.previewing }

// Update applies finished loads of every viewer and keeps the shared
// controls in sync with the active one.
func (c *Coordinator) Update() {
	for _, v := range c.Viewers() {
		v.Poll()
	}
	if c.active != nil && !c.previewing {
		c.Refresh()
	}
}
