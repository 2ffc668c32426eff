package ui

import (
	"image"

	"github.com/ADavid9914/PaginaWebTRB/engine"
	"github.com/ADavid9914/PaginaWebTRB/viewer"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// Viewport is the area a viewer renders into. The widget reserves the
// space; the rendered image is blitted over it after the UI is drawn.
type Viewport struct {
	id        string
	panel     string
	container *widget.Container
	renderer  *engine.Renderer
	minW      int
	minH      int
}

func newViewport(id, panel string, width, height int) *Viewport {
	return &Viewport{
		id:    id,
		panel: panel,
		container: widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(solidNineSlice(trackColor)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(width, height),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		),
		renderer: engine.NewRenderer(width, height),
		minW:     width,
		minH:     height,
	}
}

func (v *Viewport) ID() string { return v.id }

func (v *Viewport) Panel() string { return v.panel }

func (v *Viewport) Rect() image.Rectangle { return v.container.GetWidget().Rect }

// Size is the laid out size, or the requested minimum before the first
// layout pass.
func (v *Viewport) Size() (int, int) {
	r := v.Rect()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return v.minW, v.minH
	}
	return r.Dx(), r.Dy()
}

func (v *Viewport) Renderer() viewer.Renderer { return v.renderer }

func (v *Viewport) Contains(x, y int) bool {
	return image.Pt(x, y).In(v.Rect())
}

// Draw copies the last rendered frame into place.
func (v *Viewport) Draw(screen *ebiten.Image) {
	img := v.renderer.Image()
	r := v.Rect()
	if img == nil || r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(img, op)
}
