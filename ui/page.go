package ui

import (
	"fmt"
	"image"

	"github.com/ADavid9914/PaginaWebTRB/viewer"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type TabSpec struct {
	Target      string
	Label       string
	Viewport    string
	Description string
}

type PageOptions struct {
	Tabs           []TabSpec
	ViewportWidth  int
	ViewportHeight int
	OnTab          func(target string)
	Player         PlayerActions
	Switcher       SwitcherActions
}

// Page is the whole widget tree. It hosts the viewports viewers draw into
// and shows one panel at a time.
type Page struct {
	ui        *ebitenui.UI
	column    *widget.Container
	tabs      *TabBar
	panels    map[string]*widget.Container
	viewports map[string]*Viewport
	byPanel   map[string]*Viewport
	player    *Player
	switcher  *SwitcherPanel
	active    string
}

func NewPage(opts PageOptions) (*Page, error) {
	if len(opts.Tabs) == 0 {
		return nil, fmt.Errorf("ui: page needs at least one tab")
	}
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = 760
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = 430
	}

	face, err := newFace(15)
	if err != nil {
		return nil, err
	}
	small, err := newFace(12)
	if err != nil {
		return nil, err
	}
	theme := newTheme(&face)

	p := &Page{
		ui:        &ebitenui.UI{PrimaryTheme: theme},
		panels:    make(map[string]*widget.Container),
		viewports: make(map[string]*Viewport),
		byPanel:   make(map[string]*Viewport),
	}
	p.player = newPlayer(theme, &small, opts.ViewportWidth-340, opts.Player)
	p.switcher = newSwitcherPanel(theme, &face, &small, opts.Switcher)
	p.tabs = newTabBar(theme, opts.Tabs, opts.OnTab)

	host := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	for _, t := range opts.Tabs {
		if _, dup := p.panels[t.Target]; dup {
			return nil, fmt.Errorf("ui: duplicate panel %q", t.Target)
		}
		vp := newViewport(t.Viewport, t.Target, opts.ViewportWidth, opts.ViewportHeight)
		slot := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)))
		panel := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			)),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			})),
		)
		panel.AddChild(vp.container)
		panel.AddChild(slot)
		panel.AddChild(newText(&small, t.Description, mutedTextColor))
		panel.GetWidget().Visibility = widget.Visibility_Hide

		host.AddChild(panel)
		p.panels[t.Target] = panel
		p.viewports[t.Viewport] = vp
		p.byPanel[t.Target] = vp
		p.player.addSlot(t.Target, slot)
	}

	p.column = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	p.column.AddChild(p.tabs.container)
	p.column.AddChild(host)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
	)
	root.AddChild(p.column)
	root.AddChild(p.switcher.container)
	p.ui.Container = root
	return p, nil
}

func (p *Page) UI() *ebitenui.UI { return p.ui }

func (p *Page) Player() *Player { return p.player }

func (p *Page) Switcher() *SwitcherPanel { return p.switcher }

// Lookup finds a viewport by id.
func (p *Page) Lookup(id string) (viewer.Host, bool) {
	vp, ok := p.viewports[id]
	if !ok {
		return nil, false
	}
	return vp, true
}

func (p *Page) Viewport(id string) (*Viewport, bool) {
	vp, ok := p.viewports[id]
	return vp, ok
}

// Show makes target the only visible panel and marks its tab.
func (p *Page) Show(target string) {
	for name, panel := range p.panels {
		if name == target {
			panel.GetWidget().Visibility = widget.Visibility_Show
		} else {
			panel.GetWidget().Visibility = widget.Visibility_Hide
		}
	}
	p.tabs.SetActive(target)
	p.active = target
	p.column.RequestRelayout()
}

func (p *Page) ActivePanel() string { return p.active }

// ActiveViewport is the viewport of the visible panel, or nil.
func (p *Page) ActiveViewport() *Viewport { return p.byPanel[p.active] }

// ContentRect is the area covered by the tab column; decorations are
// painted outside it.
func (p *Page) ContentRect() image.Rectangle { return p.column.GetWidget().Rect }

// OverWidgets reports whether (x, y) is on a widget that handles its own
// input.
func (p *Page) OverWidgets(x, y int) bool {
	pt := image.Pt(x, y)
	return pt.In(p.switcher.Rect())
}

func (p *Page) Update() {
	p.ui.Update()
}

func (p *Page) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
	if vp := p.ActiveViewport(); vp != nil {
		vp.Draw(screen)
	}
	p.player.seek.Draw(screen)
}
