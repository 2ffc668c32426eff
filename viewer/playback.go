package viewer

import (
	"github.com/ADavid9914/PaginaWebTRB/common"
)

func (v *Viewer) setPlaying(playing bool) {
	v.playing = playing
	if playing {
		v.clock.Start()
	} else {
		v.clock.Stop()
	}
}

// Toggle flips playback. It does nothing until there is either a mixer or
// the placeholder to animate.
func (v *Viewer) Toggle() {
	if v.mixer == nil && !v.showingPlaceholder() {
		return
	}
	v.setPlaying(!v.playing)
}

func (v *Viewer) Play() {
	if !v.playing {
		v.Toggle()
	}
}

func (v *Viewer) Pause() {
	if v.playing {
		v.Toggle()
	}
}

// Step pauses and moves the playhead by seconds, clamped to the clip range.
// Mixers without seek support can only step forward.
func (v *Viewer) Step(seconds float64) {
	if v.playing {
		v.setPlaying(false)
	}
	if v.mixer == nil {
		if v.showingPlaceholder() {
			v.spinPlaceholder(float32(seconds * 2))
		}
		return
	}

	next := common.Clamp(v.current+seconds, 0, v.duration)
	if s, ok := v.mixer.(Seeker); ok {
		v.current = next
		s.SetTime(next)
		return
	}
	if seconds < 0 {
		v.log.Warnf("cannot step backwards: mixer does not support seeking")
		return
	}
	v.current = next
	v.mixer.Update(seconds)
}

// SetTime seeks to t, clamped to the clip range. Playback state is kept.
func (v *Viewer) SetTime(t float64) {
	v.current = common.Clamp(t, 0, v.duration)
	if v.mixer == nil {
		return
	}
	if s, ok := v.mixer.(Seeker); ok {
		s.SetTime(v.current)
	}
}
