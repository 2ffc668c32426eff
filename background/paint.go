package background

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// Cover returns the scale and offset that make a w×h source fill a dw×dh
// area, cropping the overflow equally on both sides.
func Cover(w, h, dw, dh int) (scale, tx, ty float64) {
	if w <= 0 || h <= 0 || dw <= 0 || dh <= 0 {
		return 0, 0, 0
	}
	sx := float64(dw) / float64(w)
	sy := float64(dh) / float64(h)
	scale = max(sx, sy)
	tx = (float64(dw) - float64(w)*scale) / 2
	ty = (float64(dh) - float64(h)*scale) / 2
	return scale, tx, ty
}

// DrawCover paints img over the rect of dst.
func DrawCover(dst *ebiten.Image, img *ebiten.Image, rect image.Rectangle) {
	if dst == nil || img == nil || rect.Empty() {
		return
	}
	b := img.Bounds()
	scale, tx, ty := Cover(b.Dx(), b.Dy(), rect.Dx(), rect.Dy())
	sub, ok := dst.SubImage(rect).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(rect.Min.X)+tx, float64(rect.Min.Y)+ty)
	op.Filter = ebiten.FilterLinear
	sub.DrawImage(img, op)
}

// Thumbnail scales src to exactly w×h.
func Thumbnail(src image.Image, w, h int) *image.RGBA {
	if src == nil || w <= 0 || h <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
