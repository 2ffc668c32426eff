package main

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var viewerKeys = map[ebiten.Key]bool{
	ebiten.KeySpace:      true,
	ebiten.KeyArrowLeft:  true,
	ebiten.KeyArrowRight: true,
	ebiten.KeyW:          true,
	ebiten.KeyA:          true,
	ebiten.KeyS:          true,
	ebiten.KeyD:          true,
}

// Input is the per-frame snapshot of everything the page reacts to.
type Input struct {
	CursorX, CursorY int
	// WheelDelta follows the DOM convention: positive scrolls away.
	WheelDelta float64

	LeftPressed  bool
	LeftHeld     bool
	LeftReleased bool

	KeysDown []ebiten.Key
	KeysUp   []ebiten.Key

	PastePressed bool
	Dropped      fs.FS
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.CursorX, i.CursorY = ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	i.WheelDelta = -wy * 100

	i.LeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.LeftHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.LeftReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	i.KeysDown = filterKeys(inpututil.AppendJustPressedKeys(i.KeysDown[:0]))
	i.KeysUp = filterKeys(inpututil.AppendJustReleasedKeys(i.KeysUp[:0]))

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	i.PastePressed = ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV)
	i.Dropped = ebiten.DroppedFiles()
}

func filterKeys(keys []ebiten.Key) []ebiten.Key {
	out := keys[:0]
	for _, k := range keys {
		if viewerKeys[k] {
			out = append(out, k)
		}
	}
	return out
}
