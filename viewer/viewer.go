package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ADavid9914/PaginaWebTRB/common"
	"github.com/ADavid9914/PaginaWebTRB/engine"
	"github.com/ADavid9914/PaginaWebTRB/logging"
	"github.com/ADavid9914/PaginaWebTRB/loop"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrContainerNotFound = errors.New("container not found")
	ErrNoCandidate       = errors.New("no candidate path could be loaded")
)

// DefaultTryPaths are the candidate model locations used when a Config
// names none.
var DefaultTryPaths = []string{
	"cubo2.glb",
	"multimedia/cubo2.glb",
	"multimedia/archivosblender/cubo2.glb",
}

const DefaultStepSeconds = 0.5

type Config struct {
	ID        string
	Container string
	TryPaths  []string

	AutoStart    bool
	AutoPlay     bool
	LoadOnCreate bool

	StepSeconds float64

	// OnLoad runs on the update goroutine after a load attempt finished,
	// whether a model or the placeholder ended up in the scene.
	OnLoad func()
}

func DefaultConfig() Config {
	return Config{
		TryPaths:     append([]string(nil), DefaultTryPaths...),
		AutoStart:    true,
		LoadOnCreate: true,
		StepSeconds:  DefaultStepSeconds,
	}
}

// Renderer draws a scene from a camera into the host's surface.
type Renderer interface {
	Render(scene *engine.Scene, cam *engine.Camera)
	SetSize(width, height int)
}

// Host is the viewport a viewer draws into.
type Host interface {
	Size() (width, height int)
	Renderer() Renderer
}

// PointerReleaser is implemented by hosts that capture the pointer during a
// drag.
type PointerReleaser interface {
	ReleasePointer() error
}

type Hosts interface {
	Lookup(id string) (Host, bool)
}

type Loader interface {
	Load(ctx context.Context, path string) (*engine.Asset, error)
}

// Mixer advances the animations of a loaded model.
type Mixer interface {
	Update(dt float64)
}

// Seeker is the optional absolute-time capability of a Mixer.
type Seeker interface {
	SetTime(t float64)
}

type Deps struct {
	Hosts     Hosts
	Loader    Loader
	Scheduler *loop.Scheduler
	Logger    logging.Logger
	Now       func() time.Time
	NewMixer  func(asset *engine.Asset) Mixer
}

// Viewer owns one scene, its camera and the playback state of the model
// shown in it. Every method must be called from the update goroutine.
type Viewer struct {
	cfg      Config
	log      logging.Logger
	host     Host
	renderer Renderer
	loader   Loader
	newMixer func(asset *engine.Asset) Mixer
	task     *loop.Task
	clock    *Clock

	scene       *engine.Scene
	camera      *engine.Camera
	placeholder *engine.Node
	model       *engine.Node
	mixer       Mixer

	playing  bool
	current  float64
	duration float64
	spin     float32

	orbit Orbit

	pointerDown  bool
	lastX, lastY float64
	focused      bool
	keys         map[ebiten.Key]bool

	loads      chan loadResult
	loadGen    int
	cancelLoad context.CancelFunc
	loading    bool
}

func New(cfg Config, deps Deps) (*Viewer, error) {
	if deps.Hosts == nil {
		return nil, fmt.Errorf("viewer %s: no hosts: %w", cfg.ID, ErrContainerNotFound)
	}
	host, ok := deps.Hosts.Lookup(cfg.Container)
	if !ok || host == nil {
		return nil, fmt.Errorf("viewer %s: container %q: %w", cfg.ID, cfg.Container, ErrContainerNotFound)
	}
	if deps.Loader == nil {
		return nil, fmt.Errorf("viewer %s: loader is required", cfg.ID)
	}
	if deps.Scheduler == nil {
		return nil, fmt.Errorf("viewer %s: scheduler is required", cfg.ID)
	}
	if len(cfg.TryPaths) == 0 {
		cfg.TryPaths = append([]string(nil), DefaultTryPaths...)
	}
	if cfg.StepSeconds <= 0 {
		cfg.StepSeconds = DefaultStepSeconds
	}

	log := logging.OrNop(deps.Logger)
	if dl, ok := log.(*logging.DefaultLogger); ok {
		log = dl.With(fmt.Sprintf("viewer %s %s", cfg.ID, uuid.NewString()[:8]))
	}

	v := &Viewer{
		cfg:      cfg,
		log:      log,
		host:     host,
		renderer: host.Renderer(),
		loader:   deps.Loader,
		newMixer: deps.NewMixer,
		clock:    NewClock(deps.Now),
		orbit:    NewOrbit(),
		keys:     make(map[ebiten.Key]bool),
		loads:    make(chan loadResult, 4),
	}
	if v.newMixer == nil {
		v.newMixer = newEngineMixer
	}
	if v.renderer == nil {
		return nil, fmt.Errorf("viewer %s: container %q has no renderer", cfg.ID, cfg.Container)
	}

	v.scene, v.placeholder = buildScene()
	w, h := host.Size()
	v.camera = engine.NewPerspectiveCamera(75, 1, 0.1, 1000)
	v.camera.SetPosition(mgl32.Vec3{5, 3, 5})
	v.Resize(w, h)
	v.updateCamera()

	v.task = deps.Scheduler.Add("viewer:"+cfg.ID, v.frame)

	if cfg.LoadOnCreate {
		v.LoadModel(nil)
	}
	if cfg.AutoStart {
		v.StartRendering()
	}
	v.log.Debugf("created in %s", cfg.Container)
	return v, nil
}

// newEngineMixer builds an engine mixer with every clip reset and playing.
func newEngineMixer(asset *engine.Asset) Mixer {
	m := engine.NewMixer(asset.Root)
	for _, clip := range asset.Clips {
		m.ClipAction(clip).Reset().Play()
	}
	return m
}

func (v *Viewer) ID() string { return v.cfg.ID }

func (v *Viewer) Container() string { return v.cfg.Container }

func (v *Viewer) StepSeconds() float64 { return v.cfg.StepSeconds }

func (v *Viewer) Scene() *engine.Scene { return v.scene }

func (v *Viewer) Camera() *engine.Camera { return v.camera }

// Model is the node currently shown: the loaded root, the placeholder after
// a failed load, or nil while the first load is pending.
func (v *Viewer) Model() *engine.Node { return v.model }

func (v *Viewer) Placeholder() *engine.Node { return v.placeholder }

func (v *Viewer) HasMixer() bool { return v.mixer != nil }

func (v *Viewer) Orbit() Orbit { return v.orbit }

func (v *Viewer) Loading() bool { return v.loading }

func (v *Viewer) Time() float64 { return v.current }

func (v *Viewer) Duration() float64 { return v.duration }

func (v *Viewer) Playing() bool { return v.playing }

func (v *Viewer) Rendering() bool { return v.task.Scheduled() }

func (v *Viewer) TryPaths() []string { return append([]string(nil), v.cfg.TryPaths...) }

// SetOnLoad replaces the callback run after each finished load.
func (v *Viewer) SetOnLoad(fn func()) { v.cfg.OnLoad = fn }

func (v *Viewer) showingPlaceholder() bool {
	return v.model != nil && v.model == v.placeholder
}

// StartRendering schedules the per-frame task. The clock baseline is reset
// so time spent stopped is not replayed.
func (v *Viewer) StartRendering() {
	if !v.task.Start() {
		return
	}
	v.clock.Delta()
	v.log.Debugf("rendering started")
}

func (v *Viewer) StopRendering() {
	if v.task.Stop() {
		v.log.Debugf("rendering stopped")
	}
}

func (v *Viewer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.camera.SetAspect(width, height)
	v.renderer.SetSize(width, height)
}

// Dispose cancels a pending load and stops rendering.
func (v *Viewer) Dispose() {
	if v.cancelLoad != nil {
		v.cancelLoad()
		v.cancelLoad = nil
	}
	v.loadGen++
	v.loading = false
	v.StopRendering()
}

func (v *Viewer) updateCamera() {
	v.camera.SetPosition(v.orbit.Eye())
	v.camera.LookAt(v.orbit.Target)
}

func (v *Viewer) frame() {
	if v.focused {
		v.moveTarget()
	}
	v.updateCamera()

	if v.playing {
		dt := v.clock.Delta()
		if v.mixer != nil {
			v.mixer.Update(dt)
			v.current = common.Wrap(v.current+dt, v.duration)
		}
	}
	if v.showingPlaceholder() {
		v.spinPlaceholder(0.01)
	}
	v.renderer.Render(v.scene, v.camera)
}

func (v *Viewer) spinPlaceholder(radians float32) {
	v.spin += radians
	v.placeholder.SetRotationY(v.spin)
}
