// Package coordinator decides which viewer owns the shared transport
// controls and the render budget.
package coordinator

import (
	"errors"
	"fmt"

	"github.com/ADavid9914/PaginaWebTRB/logging"
)

var ErrUnknownTab = errors.New("unknown tab")

// Viewer is the part of a viewer instance the coordinator drives.
type Viewer interface {
	ID() string
	Poll() bool
	Toggle()
	Pause()
	Step(seconds float64)
	SetTime(t float64)
	Time() float64
	Duration() float64
	Playing() bool
	StartRendering()
	StopRendering()
	Rendering() bool
	SetOnLoad(fn func())
}

// Controls is the shared transport block.
type Controls interface {
	SetPlaying(playing bool)
	SetSeek(limit, value float64, disabled bool)
	SetTimeLabel(text string)
	// MoveTo relocates the block into the given panel.
	MoveTo(panel string) error
}

// Panels shows one panel and marks its tab active, hiding the rest.
type Panels interface {
	Show(target string)
}

type Tab struct {
	Target   string
	Label    string
	Viewport string
	Lazy     bool
}

// Factory builds the viewer for a tab.
type Factory func(tab Tab) (Viewer, error)

type Options struct {
	Tabs        []Tab
	Initial     string
	Factory     Factory
	Controls    Controls
	Panels      Panels
	StepSeconds float64
	Logger      logging.Logger
}

type Coordinator struct {
	tabs        []Tab
	initial     string
	factory     Factory
	controls    Controls
	panels      Panels
	stepSeconds float64
	log         logging.Logger

	viewers    map[string]Viewer
	active     Viewer
	activeTab  string
	previewing bool
}

func New(opts Options) (*Coordinator, error) {
	if len(opts.Tabs) == 0 {
		return nil, errors.New("coordinator: no tabs")
	}
	if opts.Factory == nil {
		return nil, errors.New("coordinator: factory is required")
	}
	c := &Coordinator{
		tabs:        append([]Tab(nil), opts.Tabs...),
		initial:     opts.Initial,
		factory:     opts.Factory,
		controls:    opts.Controls,
		panels:      opts.Panels,
		stepSeconds: opts.StepSeconds,
		log:         logging.OrNop(opts.Logger),
		viewers:     make(map[string]Viewer),
	}
	if c.stepSeconds <= 0 {
		c.stepSeconds = 0.5
	}
	if c.initial != "" {
		if _, ok := c.tab(c.initial); !ok {
			return nil, fmt.Errorf("coordinator: initial tab %q: %w", c.initial, ErrUnknownTab)
		}
	}
	for _, t := range c.tabs {
		if t.Lazy {
			continue
		}
		if _, err := c.create(t); err != nil {
			c.log.Errorf("create viewer for %s: %v", t.Target, err)
		}
	}
	return c, nil
}

func (c *Coordinator) tab(target string) (Tab, bool) {
	for _, t := range c.tabs {
		if t.Target == target {
			return t, true
		}
	}
	return Tab{}, false
}

func (c *Coordinator) create(t Tab) (Viewer, error) {
	v, err := c.factory(t)
	if err != nil {
		return nil, err
	}
	v.SetOnLoad(func() {
		if c.active == v {
			c.Refresh()
		}
	})
	c.viewers[t.Target] = v
	c.log.Infof("viewer %s created for %s", v.ID(), t.Target)
	return v, nil
}

// Start activates the initial tab, or the first one.
func (c *Coordinator) Start() error {
	target := c.initial
	if target == "" {
		target = c.tabs[0].Target
	}
	return c.Activate(target)
}

// Activate switches to the tab whose panel is target.
func (c *Coordinator) Activate(target string) error {
	t, ok := c.tab(target)
	if !ok {
		return fmt.Errorf("coordinator: activate %q: %w", target, ErrUnknownTab)
	}
	c.activeTab = target
	c.previewing = false
	if c.panels != nil {
		c.panels.Show(target)
	}
	if c.controls != nil {
		if err := c.controls.MoveTo(target); err != nil {
			c.log.Warnf("move controls to %s: %v", target, err)
		}
	}

	v, ok := c.viewers[target]
	if !ok {
		created, err := c.create(t)
		if err != nil {
			c.log.Errorf("create viewer for %s: %v", target, err)
		}
		v = created
	}

	for key, other := range c.viewers {
		if key == target {
			continue
		}
		other.Pause()
		other.StopRendering()
	}

	c.active = v
	if v != nil {
		v.StartRendering()
	}
	c.Refresh()
	return nil
}

func (c *Coordinator) Active() Viewer { return c.active }

func (c *Coordinator) ActiveTab() string { return c.activeTab }

func (c *Coordinator) Tabs() []Tab { return append([]Tab(nil), c.tabs...) }

// Viewer returns the viewer created for target, if any.
func (c *Coordinator) Viewer(target string) (Viewer, bool) {
	v, ok := c.viewers[target]
	return v, ok
}

// Viewers returns every created viewer in tab order.
func (c *Coordinator) Viewers() []Viewer {
	out := make([]Viewer, 0, len(c.viewers))
	for _, t := range c.tabs {
		if v, ok := c.viewers[t.Target]; ok {
			out = append(out, v)
		}
	}
	return out
}
