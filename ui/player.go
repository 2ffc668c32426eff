package ui

import (
	"errors"
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var ErrNoSlot = errors.New("no player slot")

const (
	labelPlay  = "Reproducir"
	labelPause = "Pausa"
)

type PlayerActions struct {
	Toggle      func()
	StepBack    func()
	StepForward func()
	Preview     func(t float64)
	Seek        func(t float64)
}

// Player is the transport block shared by every panel. It lives in one
// panel slot at a time.
type Player struct {
	container *widget.Container
	play      *widget.Button
	back      *widget.Button
	forward   *widget.Button
	seek      *SeekBar
	label     *widget.Text

	slots map[string]*widget.Container
	slot  string
}

func newPlayer(theme *widget.Theme, fontFace *text.Face, seekWidth int, actions PlayerActions) *Player {
	p := &Player{slots: make(map[string]*widget.Container)}

	p.container = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
	)

	p.back = newButton(theme, "« 0.5s", actions.StepBack)
	p.play = newButton(theme, labelPlay, actions.Toggle)
	p.forward = newButton(theme, "0.5s »", actions.StepForward)
	p.seek = newSeekBar(seekWidth, 24)
	p.seek.OnPreview = actions.Preview
	p.seek.OnCommit = actions.Seek
	p.label = widget.NewText(
		widget.TextOpts.Text("0.00 / 0.00 s", fontFace, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	p.container.AddChild(p.back)
	p.container.AddChild(p.play)
	p.container.AddChild(p.forward)
	p.container.AddChild(p.seek.Widget())
	p.container.AddChild(p.label)
	return p
}

func (p *Player) Seek() *SeekBar { return p.seek }

func (p *Player) Slot() string { return p.slot }

func (p *Player) Label() string { return p.label.Label }

func (p *Player) PlayLabel() string {
	if t := p.play.Text(); t != nil {
		return t.Label
	}
	return ""
}

func (p *Player) addSlot(panel string, slot *widget.Container) {
	p.slots[panel] = slot
}

func (p *Player) SetPlaying(playing bool) {
	label := labelPlay
	if playing {
		label = labelPause
	}
	if t := p.play.Text(); t != nil {
		t.Label = label
	}
}

func (p *Player) SetSeek(limit, value float64, disabled bool) {
	p.seek.Set(limit, value, disabled)
}

func (p *Player) SetTimeLabel(s string) {
	p.label.Label = s
}

// MoveTo puts the player in the slot of panel, between its viewport and
// its description.
func (p *Player) MoveTo(panel string) error {
	slot, ok := p.slots[panel]
	if !ok {
		return fmt.Errorf("%w for %q", ErrNoSlot, panel)
	}
	if p.slot == panel {
		return nil
	}
	if prev, ok := p.slots[p.slot]; ok {
		prev.RemoveChild(p.container)
		prev.RequestRelayout()
	}
	slot.AddChild(p.container)
	slot.RequestRelayout()
	p.slot = panel
	return nil
}
