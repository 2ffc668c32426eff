package ui

import (
	"image"
	"image/color"

	"github.com/ADavid9914/PaginaWebTRB/common"
	"github.com/hajimehoshi/ebiten/v2"
)

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	if sub, ok := dst.SubImage(r).(*ebiten.Image); ok {
		sub.Fill(c)
	}
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width int, c color.Color) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// verticalGradient fills dst from top to bottom, one row at a time.
func verticalGradient(dst *ebiten.Image, top, bottom color.RGBA) {
	b := dst.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 0xff,
		}
		fillRect(dst, image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+y+1), c)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(common.Lerp(float32(a), float32(b), float32(t)) + 0.5)
}
