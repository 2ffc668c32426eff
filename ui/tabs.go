package ui

import (
	"github.com/ebitenui/ebitenui/widget"
)

// TabBar is a radio group of toggle buttons, one per panel.
type TabBar struct {
	container *widget.Container
	group     *widget.RadioGroup
	buttons   []*widget.Button
	targets   []string
	suppress  bool
}

func newTabBar(theme *widget.Theme, tabs []TabSpec, onSelect func(target string)) *TabBar {
	tb := &TabBar{}
	tb.container = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	for _, t := range tabs {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.Label, theme.ButtonTheme.TextFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		)
		tb.buttons = append(tb.buttons, btn)
		tb.targets = append(tb.targets, t.Target)
		tb.container.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if tb.suppress || onSelect == nil {
				return
			}
			for i, b := range tb.buttons {
				if args.Active == b {
					onSelect(tb.targets[i])
					return
				}
			}
		}),
	)
	return tb
}

// SetActive marks the tab for target without firing the select callback.
func (tb *TabBar) SetActive(target string) {
	for i, t := range tb.targets {
		if t == target {
			tb.suppress = true
			tb.group.SetActive(tb.buttons[i])
			tb.suppress = false
			return
		}
	}
}
