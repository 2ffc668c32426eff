package ui

import (
	"image"
	"image/color"

	"github.com/ADavid9914/PaginaWebTRB/background"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	previewWidth  = 200
	previewHeight = 90
)

var (
	gradientTop    = color.RGBA{0xe0, 0xe7, 0xff, 0xff}
	gradientBottom = color.RGBA{0xf8, 0xfa, 0xfc, 0xff}
)

type SwitcherActions struct {
	UseBackground func()
	UseSides      func()
	Upload        func()
	Paste         func()
	Reset         func()
}

// SwitcherPanel is the floating background and decoration picker.
type SwitcherPanel struct {
	container *widget.Container
	status    *widget.Text
	preview   *ebiten.Image
	shown     background.Preview
	painted   bool
}

func newSwitcherPanel(theme *widget.Theme, fontFace, smallFace *text.Face, actions SwitcherActions) *SwitcherPanel {
	sp := &SwitcherPanel{
		preview: ebiten.NewImage(previewWidth, previewHeight),
	}
	sp.container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(240, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	sp.container.AddChild(newText(fontFace, "Fondo y decoración", textColor))
	sp.container.AddChild(newText(smallFace, "Usar imagen del proyecto", mutedTextColor))
	sp.container.AddChild(newButton(theme, "Usar: multimedia/Fotos/chatgpt.jpg", actions.UseBackground))
	sp.container.AddChild(newText(smallFace, "Decoración lateral", mutedTextColor))
	sp.container.AddChild(newButton(theme, "Usar: multimedia/Fotos/drone-sides.jpg", actions.UseSides))
	sp.container.AddChild(newText(smallFace, "Subir imagen (aplica a fondo y laterales)", mutedTextColor))
	sp.container.AddChild(newButton(theme, "Elegir archivo...", actions.Upload))
	sp.container.AddChild(newButton(theme, "Pegar del portapapeles", actions.Paste))
	sp.container.AddChild(newButton(theme, "Restablecer", actions.Reset))
	sp.container.AddChild(widget.NewGraphic(
		widget.GraphicOpts.Image(sp.preview),
		widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.MinSize(previewWidth, previewHeight)),
	))
	sp.status = newText(smallFace, "", mutedTextColor)
	sp.container.AddChild(sp.status)
	return sp
}

func (sp *SwitcherPanel) Rect() image.Rectangle { return sp.container.GetWidget().Rect }

func (sp *SwitcherPanel) SetStatus(s string) { sp.status.Label = s }

func (sp *SwitcherPanel) Status() string { return sp.status.Label }

// SetPreview repaints the preview box: img scaled to fit (or the neutral
// gradient when nil) and an accent outline when decorations are on.
func (sp *SwitcherPanel) SetPreview(p background.Preview, img image.Image) {
	if sp.painted && p == sp.shown {
		return
	}
	sp.shown = p
	sp.painted = true

	sp.preview.Clear()
	if img == nil {
		verticalGradient(sp.preview, gradientTop, gradientBottom)
	} else {
		thumb := background.Thumbnail(img, previewWidth, previewHeight)
		sp.preview.WritePixels(thumb.Pix)
	}
	if p.Outlined {
		strokeRect(sp.preview, sp.preview.Bounds(), 3, accentColor)
	}
}
