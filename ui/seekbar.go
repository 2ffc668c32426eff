package ui

import (
	"image"

	"github.com/ADavid9914/PaginaWebTRB/common"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const handleWidth = 10

// SeekBar is the shared time slider. ebitenui only lays it out; input and
// drawing are handled here so a drag can be previewed and committed
// separately.
type SeekBar struct {
	container *widget.Container

	limit    float64
	value    float64
	disabled bool
	dragging bool

	OnPreview func(t float64)
	OnCommit  func(t float64)
}

func newSeekBar(width, height int) *SeekBar {
	return &SeekBar{
		container: widget.NewContainer(
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(width, height),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		),
		limit:    1,
		disabled: true,
	}
}

func (s *SeekBar) Widget() *widget.Container { return s.container }

func (s *SeekBar) Rect() image.Rectangle { return s.container.GetWidget().Rect }

// Set updates bounds and position. A drag in progress keeps its position.
func (s *SeekBar) Set(limit, value float64, disabled bool) {
	if limit <= 0 {
		limit = 1
	}
	s.limit = limit
	s.disabled = disabled
	if disabled {
		s.dragging = false
	}
	if !s.dragging {
		s.value = common.Clamp(value, 0, limit)
	}
}

func (s *SeekBar) Value() float64 { return s.value }

func (s *SeekBar) Limit() float64 { return s.limit }

func (s *SeekBar) Disabled() bool { return s.disabled }

func (s *SeekBar) Dragging() bool { return s.dragging }

// ValueAt maps a screen x coordinate to a time, rounded to milliseconds.
func (s *SeekBar) ValueAt(x int) float64 {
	r := s.Rect()
	usable := r.Dx() - handleWidth
	if usable <= 0 {
		return 0
	}
	frac := common.Clamp(float64(x-r.Min.X-handleWidth/2)/float64(usable), 0, 1)
	ms := int(frac*s.limit*1000 + 0.5)
	return float64(ms) / 1000
}

// Press starts a drag when (x, y) is on the bar. It reports whether the
// press was taken.
func (s *SeekBar) Press(x, y int) bool {
	if s.disabled || !image.Pt(x, y).In(s.Rect()) {
		return false
	}
	s.dragging = true
	s.move(x)
	return true
}

func (s *SeekBar) Drag(x int) {
	if s.dragging {
		s.move(x)
	}
}

// Release ends a drag and commits the last previewed value.
func (s *SeekBar) Release() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.OnCommit != nil {
		s.OnCommit(s.value)
	}
}

func (s *SeekBar) move(x int) {
	s.value = s.ValueAt(x)
	if s.OnPreview != nil {
		s.OnPreview(s.value)
	}
}

func (s *SeekBar) Draw(screen *ebiten.Image) {
	r := s.Rect()
	if r.Empty() {
		return
	}
	cy := r.Min.Y + r.Dy()/2
	track := image.Rect(r.Min.X, cy-2, r.Max.X, cy+2)
	fillRect(screen, track, trackColor)
	if s.disabled {
		return
	}
	usable := r.Dx() - handleWidth
	hx := r.Min.X
	if usable > 0 && s.limit > 0 {
		hx += int(float64(usable) * s.value / s.limit)
	}
	fillRect(screen, image.Rect(r.Min.X, cy-2, hx+handleWidth/2, cy+2), accentColor)
	fillRect(screen, image.Rect(hx, r.Min.Y+2, hx+handleWidth, r.Max.Y-2), accentColor)
}
