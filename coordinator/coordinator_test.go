package coordinator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewer struct {
	id        string
	playing   bool
	rendering bool
	time      float64
	duration  float64
	steps     []float64
	seeks     []float64
	polls     int
	onLoad    func()
}

func (v *fakeViewer) ID() string          { return v.id }
func (v *fakeViewer) Poll() bool          { v.polls++; return false }
func (v *fakeViewer) Toggle()             { v.playing = !v.playing }
func (v *fakeViewer) Pause()              { v.playing = false }
func (v *fakeViewer) Step(s float64)      { v.playing = false; v.steps = append(v.steps, s) }
func (v *fakeViewer) SetTime(t float64)   { v.time = t; v.seeks = append(v.seeks, t) }
func (v *fakeViewer) Time() float64       { return v.time }
func (v *fakeViewer) Duration() float64   { return v.duration }
func (v *fakeViewer) Playing() bool       { return v.playing }
func (v *fakeViewer) StartRendering()     { v.rendering = true }
func (v *fakeViewer) StopRendering()      { v.rendering = false }
func (v *fakeViewer) Rendering() bool     { return v.rendering }
func (v *fakeViewer) SetOnLoad(fn func()) { v.onLoad = fn }

type fakeControls struct {
	playing  bool
	limit    float64
	value    float64
	disabled bool
	label    string
	moves    []string
	moveErr  error
}

func (c *fakeControls) SetPlaying(p bool) { c.playing = p }

func (c *fakeControls) SetSeek(limit, value float64, disabled bool) {
	c.limit, c.value, c.disabled = limit, value, disabled
}

func (c *fakeControls) SetTimeLabel(text string) { c.label = text }

func (c *fakeControls) MoveTo(panel string) error {
	c.moves = append(c.moves, panel)
	return c.moveErr
}

type fakePanels struct {
	shown []string
}

func (p *fakePanels) Show(target string) { p.shown = append(p.shown, target) }

type fixture struct {
	coord    *Coordinator
	viewers  map[string]*fakeViewer
	created  []string
	controls *fakeControls
	panels   *fakePanels
}

var pageTabs = []Tab{
	{Target: "panel-v1", Label: "Modelo 1", Viewport: "escenario3D_v1"},
	{Target: "panel-v2", Label: "Modelo 2", Viewport: "escenario3D_v2", Lazy: true},
}

func newFixture(t *testing.T, failFor string) *fixture {
	t.Helper()
	f := &fixture{
		viewers:  make(map[string]*fakeViewer),
		controls: &fakeControls{},
		panels:   &fakePanels{},
	}
	c, err := New(Options{
		Tabs: pageTabs,
		Factory: func(tab Tab) (Viewer, error) {
			f.created = append(f.created, tab.Target)
			if tab.Target == failFor {
				return nil, errors.New("container missing")
			}
			v := &fakeViewer{id: tab.Viewport, rendering: true, duration: 4}
			f.viewers[tab.Target] = v
			return v, nil
		},
		Controls:    f.controls,
		Panels:      f.panels,
		StepSeconds: 0.5,
	})
	require.NoError(t, err)
	f.coord = c
	return f
}

func TestNewCreatesOnlyEagerViewers(t *testing.T) {
	f := newFixture(t, "")
	assert.Equal(t, []string{"panel-v1"}, f.created)
	_, ok := f.coord.Viewer("panel-v2")
	assert.False(t, ok)
}

func TestNewRejectsUnknownInitialTab(t *testing.T) {
	_, err := New(Options{
		Tabs:    pageTabs,
		Initial: "panel-v9",
		Factory: func(Tab) (Viewer, error) { return &fakeViewer{}, nil },
	})
	assert.True(t, errors.Is(err, ErrUnknownTab))
}

func TestStartActivatesFirstTab(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.coord.Start())

	assert.Equal(t, "panel-v1", f.coord.ActiveTab())
	assert.Same(t, f.viewers["panel-v1"], f.coord.Active())
	assert.Equal(t, []string{"panel-v1"}, f.panels.shown)
	assert.Equal(t, []string{"panel-v1"}, f.controls.moves)
}

func TestActivateSwitchesRendering(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.coord.Start())
	v1 := f.viewers["panel-v1"]
	v1.playing = true

	require.NoError(t, f.coord.Activate("panel-v2"))
	v2 := f.viewers["panel-v2"]

	require.NotNil(t, v2)
	assert.Equal(t, []string{"panel-v1", "panel-v2"}, f.created)
	assert.Same(t, v2, f.coord.Active())
	assert.False(t, v1.rendering)
	assert.False(t, v1.playing)
	assert.True(t, v2.rendering)

	require.NoError(t, f.coord.Activate("panel-v1"))
	assert.True(t, v1.rendering)
	assert.False(t, v2.rendering)
	assert.Len(t, f.created, 2, "lazy viewer is built once")

	rendering := 0
	for _, v := range f.viewers {
		if v.rendering {
			rendering++
		}
	}
	assert.Equal(t, 1, rendering)
}

func TestActivateUnknownTab(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.coord.Start())
	err := f.coord.Activate("panel-v3")
	assert.True(t, errors.Is(err, ErrUnknownTab))
	assert.Equal(t, "panel-v1", f.coord.ActiveTab())
}

func TestActivateLogsRelocationFailure(t *testing.T) {
	f := newFixture(t, "")
	f.controls.moveErr = errors.New("slot missing")
	require.NoError(t, f.coord.Start())
	assert.Same(t, f.viewers["panel-v1"], f.coord.Active())
}

func TestFailedLazyCreationDisablesControls(t *testing.T) {
	f := newFixture(t, "panel-v2")
	require.NoError(t, f.coord.Start())
	require.NoError(t, f.coord.Activate("panel-v2"))

	assert.Nil(t, f.coord.Active())
	assert.Equal(t, "panel-v2", f.coord.ActiveTab())
	assert.False(t, f.viewers["panel-v1"].rendering)
	assert.True(t, f.controls.disabled)

	f.coord.TogglePlay()
	f.coord.StepForward()
	f.coord.Seek(1)
	assert.Empty(t, f.viewers["panel-v1"].steps)
	assert.Empty(t, f.viewers["panel-v1"].seeks)
}

func TestRefreshFormatsControls(t *testing.T) {
	tests := []struct {
		name     string
		time     float64
		duration float64
		limit    float64
		disabled bool
		label    string
	}{
		{name: "animated", time: 1.234, duration: 4, limit: 4, disabled: false, label: "1.23 / 4.00 s"},
		{name: "static", time: 0, duration: 0, limit: 1, disabled: true, label: "0.00 / 0.00 s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			require.NoError(t, f.coord.Start())
			v := f.viewers["panel-v1"]
			v.time, v.duration = tt.time, tt.duration

			f.coord.Refresh()

			assert.Equal(t, tt.limit, f.controls.limit)
			assert.Equal(t, tt.time, f.controls.value)
			assert.Equal(t, tt.disabled, f.controls.disabled)
			assert.Equal(t, tt.label, f.controls.label)
		})
	}
}

func TestActionsReachOnlyActiveViewer(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.coord.Start())
	require.NoError(t, f.coord.Activate("panel-v2"))
	v1, v2 := f.viewers["panel-v1"], f.viewers["panel-v2"]

	f.coord.TogglePlay()
	f.coord.StepForward()
	f.coord.StepBackward()
	f.coord.Seek(2)

	assert.Equal(t, []float64{0.5, -0.5}, v2.steps)
	assert.Equal(t, []float64{2}, v2.seeks)
	assert.Empty(t, v1.steps)
	assert.Empty(t, v1.seeks)
	assert.False(t, v1.playing)
}

func TestPreviewSeekOnlyTouchesLabel(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.coord.Start())
	v := f.viewers["panel-v1"]

	f.coord.PreviewSeek(3)
	assert.Equal(t, "3.00 / 4.00 s", f.controls.label)
	assert.Empty(t, v.seeks)
	assert.True(t, f.coord.Previewing())

	f.coord.Update()
	assert.Equal(t, "3.00 / 4.00 s", f.controls.label, "sync must not clobber a preview")

	f.coord.Seek(3)
	assert.False(t, f.coord.Previewing())
	assert.Equal(t, []float64{3}, v.seeks)
	assert.Equal(t, "3.00 / 4.00 s", f.controls.label)
}

func TestUpdatePollsViewers(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.coord.Start())
	require.NoError(t, f.coord.Activate("panel-v2"))

	f.coord.Update()

	assert.Equal(t, 1, f.viewers["panel-v1"].polls)
	assert.Equal(t, 1, f.viewers["panel-v2"].polls)
}

func TestLoadCallbackRefreshesActiveViewer(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.coord.Start())
	v := f.viewers["panel-v1"]
	v.duration = 2.5

	v.onLoad()

	assert.Equal(t, 2.5, f.controls.limit)
	assert.Equal(t, "0.00 / 2.50 s", f.controls.label)
}
