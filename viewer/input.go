package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerDown begins an orbit drag and focuses the viewport.
func (v *Viewer) PointerDown(x, y float64) {
	v.pointerDown = true
	v.lastX, v.lastY = x, y
	v.Focus()
}

func (v *Viewer) PointerMove(x, y float64) {
	if !v.pointerDown {
		return
	}
	dx, dy := x-v.lastX, y-v.lastY
	v.lastX, v.lastY = x, y
	v.orbit.Drag(dx, dy)
	v.updateCamera()
}

func (v *Viewer) PointerUp() {
	if !v.pointerDown {
		return
	}
	v.pointerDown = false
	if r, ok := v.host.(PointerReleaser); ok {
		if err := r.ReleasePointer(); err != nil {
			v.log.Debugf("release pointer: %v", err)
		}
	}
}

func (v *Viewer) PointerCancel() {
	v.pointerDown = false
}

func (v *Viewer) Dragging() bool { return v.pointerDown }

func (v *Viewer) Wheel(deltaY float64) {
	v.orbit.Zoom(deltaY)
	v.updateCamera()
}

func (v *Viewer) Focus() { v.focused = true }

// Blur drops focus and forgets held keys.
func (v *Viewer) Blur() {
	v.focused = false
	clear(v.keys)
}

func (v *Viewer) Focused() bool { return v.focused }

// KeyDown handles a key press while focused: shortcuts fire immediately,
// movement keys are held until KeyUp.
func (v *Viewer) KeyDown(key ebiten.Key) {
	if !v.focused {
		return
	}
	switch key {
	case ebiten.KeySpace:
		v.Toggle()
	case ebiten.KeyArrowRight:
		v.Step(v.cfg.StepSeconds)
	case ebiten.KeyArrowLeft:
		v.Step(-v.cfg.StepSeconds)
	case ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD:
		v.keys[key] = true
	}
}

func (v *Viewer) KeyUp(key ebiten.Key) {
	delete(v.keys, key)
}

func (v *Viewer) moveTarget() {
	var forward, left float64
	if v.keys[ebiten.KeyW] {
		forward++
	}
	if v.keys[ebiten.KeyS] {
		forward--
	}
	if v.keys[ebiten.KeyA] {
		left++
	}
	if v.keys[ebiten.KeyD] {
		left--
	}
	v.orbit.Move(forward, left)
}
