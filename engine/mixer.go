package engine

import (
	"math"
)

// Action is the playback state of one clip inside a Mixer. Actions loop.
type Action struct {
	clip    *Clip
	time    float64
	playing bool
}

func (a *Action) Clip() *Clip { return a.clip }

func (a *Action) Time() float64 { return a.time }

func (a *Action) Playing() bool { return a.playing }

// Reset rewinds the action to its start.
func (a *Action) Reset() *Action {
	a.time = 0
	return a
}

// Play marks the action as running. It only moves when the mixer is advanced.
func (a *Action) Play() *Action {
	a.playing = true
	return a
}

func (a *Action) Stop() *Action {
	a.playing = false
	a.time = 0
	return a
}

func (a *Action) advance(dt float64) {
	a.time += dt
	if d := a.clip.Duration; d > 0 {
		a.time = math.Mod(a.time, d)
		if a.time < 0 {
			a.time += d
		}
	}
}

// Mixer advances clip actions and writes their poses into the scene graph.
// When two running actions drive the same property the later one wins.
type Mixer struct {
	root    *Node
	actions []*Action
	time    float64
}

func NewMixer(root *Node) *Mixer {
	return &Mixer{root: root}
}

func (m *Mixer) Root() *Node { return m.root }

// Time is the total time the mixer has been advanced since the last SetTime.
func (m *Mixer) Time() float64 { return m.time }

// ClipAction returns the action for clip, creating it on first use.
func (m *Mixer) ClipAction(clip *Clip) *Action {
	for _, a := range m.actions {
		if a.clip == clip {
			return a
		}
	}
	a := &Action{clip: clip}
	m.actions = append(m.actions, a)
	return a
}

func (m *Mixer) Actions() []*Action {
	out := make([]*Action, 0, len(m.actions))
	return append(out, m.actions...)
}

// Update advances every playing action by dt seconds.
func (m *Mixer) Update(dt float64) {
	m.time += dt
	for _, a := range m.actions {
		if !a.playing {
			continue
		}
		a.advance(dt)
		a.clip.apply(a.time)
	}
}

// SetTime rewinds every action and advances the mixer to t.
func (m *Mixer) SetTime(t float64) {
	m.time = 0
	for _, a := range m.actions {
		a.time = 0
	}
	m.Update(t)
}
