package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ADavid9914/PaginaWebTRB/background"
	"github.com/ADavid9914/PaginaWebTRB/config"
	"github.com/ADavid9914/PaginaWebTRB/coordinator"
	"github.com/ADavid9914/PaginaWebTRB/engine"
	"github.com/ADavid9914/PaginaWebTRB/logging"
	"github.com/ADavid9914/PaginaWebTRB/loop"
	"github.com/ADavid9914/PaginaWebTRB/ui"
	"github.com/ADavid9914/PaginaWebTRB/viewer"
	"github.com/ADavid9914/PaginaWebTRB/watch"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var pageColor = color.RGBA{0xf3, 0xf4, 0xf6, 0xff}

// Game owns the application UI state: the coordinator and its viewers, the
// background switcher and the widgets they are wired to.
type Game struct {
	cfg *config.Config
	log *logging.DefaultLogger

	input     *Input
	scheduler *loop.Scheduler
	page      *ui.Page
	coord     *coordinator.Coordinator
	switcher  *background.Switcher
	resolver  *background.Resolver
	watcher   *watch.Watcher

	viewers      map[string]*viewer.Viewer
	focused      *viewer.Viewer
	previewDirty bool
}

func NewGame(cfg *config.Config, log *logging.DefaultLogger) (*Game, error) {
	g := &Game{
		cfg:          cfg,
		log:          log,
		input:        NewInput(),
		scheduler:    loop.NewScheduler(),
		viewers:      make(map[string]*viewer.Viewer),
		previewDirty: true,
	}

	g.switcher = background.NewSwitcher(background.NewStyle(), cfg.Presets(), log.With("background"))
	g.switcher.OnChange(func() { g.previewDirty = true })
	g.resolver = background.NewResolver(cfg.AssetRoot, log.With("background"))

	specs := make([]ui.TabSpec, 0, len(cfg.Tabs))
	for _, t := range cfg.Tabs {
		specs = append(specs, ui.TabSpec{Target: t.Target, Label: t.Label, Viewport: t.Viewport, Description: t.Description})
	}
	page, err := ui.NewPage(ui.PageOptions{
		Tabs:  specs,
		OnTab: g.activate,
		Player: ui.PlayerActions{
			Toggle:      func() { g.coord.TogglePlay() },
			StepBack:    func() { g.coord.StepBackward() },
			StepForward: func() { g.coord.StepForward() },
			Preview:     func(t float64) { g.coord.PreviewSeek(t) },
			Seek:        func(t float64) { g.coord.Seek(t) },
		},
		Switcher: ui.SwitcherActions{
			UseBackground: g.switcher.UseBackgroundPreset,
			UseSides:      g.switcher.UseSidesPreset,
			Upload:        g.uploadFromDialog,
			Paste:         g.uploadFromClipboard,
			Reset:         g.switcher.Reset,
		},
	})
	if err != nil {
		return nil, err
	}
	g.page = page

	loader := engine.NewGLTFLoader(cfg.AssetRoot)
	coord, err := coordinator.New(coordinator.Options{
		Tabs:        cfg.CoordinatorTabs(),
		Initial:     cfg.InitialTab,
		Controls:    page.Player(),
		Panels:      page,
		StepSeconds: cfg.StepSeconds,
		Logger:      log.With("coordinator"),
		Factory: func(tab coordinator.Tab) (coordinator.Viewer, error) {
			tc, ok := cfg.Tab(tab.Target)
			if !ok {
				return nil, fmt.Errorf("no config for %s: %w", tab.Target, coordinator.ErrUnknownTab)
			}
			v, err := viewer.New(tc.ViewerConfig(cfg.StepSeconds), viewer.Deps{
				Hosts:     page,
				Loader:    loader,
				Scheduler: g.scheduler,
				Logger:    log,
			})
			if err != nil {
				return nil, err
			}
			g.viewers[tab.Target] = v
			return v, nil
		},
	})
	if err != nil {
		return nil, err
	}
	g.coord = coord
	if err := coord.Start(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		g.startWatcher()
	}
	return g, nil
}

func (g *Game) startWatcher() {
	var paths []string
	for _, t := range g.cfg.Tabs {
		paths = append(paths, t.ViewerConfig(g.cfg.StepSeconds).TryPaths...)
	}
	w, dirs, err := watch.NewWatcher(watch.Dirs(g.cfg.AssetRoot, paths)...)
	if err != nil {
		g.log.Warnf("model watcher disabled: %v", err)
		return
	}
	g.watcher = w
	g.log.Debugf("watching %v", dirs)
}

func (g *Game) activate(target string) {
	if err := g.coord.Activate(target); err != nil {
		g.log.Errorf("%v", err)
		return
	}
	g.blur()
}

func (g *Game) blur() {
	if g.focused != nil {
		g.focused.Blur()
		g.focused = nil
	}
}

func (g *Game) activeViewer() *viewer.Viewer {
	return g.viewers[g.coord.ActiveTab()]
}

func (g *Game) Update() error {
	g.input.Update()
	g.page.Update()
	g.handlePointer()
	g.handleKeys()
	g.handleDrop()
	if g.input.PastePressed {
		g.uploadFromClipboard()
	}

	g.coord.Update()
	g.syncViewportSizes()
	g.scheduler.Tick()

	g.drainWatcher()
	g.syncPreview()
	return nil
}

func (g *Game) handlePointer() {
	in := g.input
	seek := g.page.Player().Seek()
	v := g.activeViewer()
	vp := g.page.ActiveViewport()

	if in.LeftPressed {
		switch {
		case seek.Press(in.CursorX, in.CursorY):
		case v != nil && vp != nil && vp.Contains(in.CursorX, in.CursorY):
			if g.focused != v {
				g.blur()
			}
			v.PointerDown(float64(in.CursorX), float64(in.CursorY))
			g.focused = v
		default:
			g.blur()
		}
	}

	if in.LeftHeld {
		seek.Drag(in.CursorX)
		if v != nil {
			v.PointerMove(float64(in.CursorX), float64(in.CursorY))
		}
	}

	if in.LeftReleased {
		seek.Release()
		if v != nil {
			v.PointerUp()
		}
	}

	if in.WheelDelta != 0 && v != nil && vp != nil && vp.Contains(in.CursorX, in.CursorY) {
		v.Wheel(in.WheelDelta)
	}
}

func (g *Game) handleKeys() {
	if g.focused == nil {
		return
	}
	for _, k := range g.input.KeysDown {
		g.focused.KeyDown(k)
	}
	for _, k := range g.input.KeysUp {
		g.focused.KeyUp(k)
	}
}

func (g *Game) handleDrop() {
	if g.input.Dropped == nil {
		return
	}
	data, name, err := ui.ReadDropped(g.input.Dropped)
	if errors.Is(err, ui.ErrNoDroppedFile) {
		return
	}
	if err != nil {
		g.reportUpload(err)
		return
	}
	g.log.Debugf("dropped %s", name)
	g.reportUpload(g.switcher.Upload(data))
}

func (g *Game) uploadFromDialog() {
	path, err := ui.OpenImageDialog()
	if errors.Is(err, ui.ErrUploadCancelled) {
		return
	}
	if err != nil {
		g.reportUpload(err)
		return
	}
	g.reportUpload(g.switcher.UploadFile(path))
}

func (g *Game) uploadFromClipboard() {
	data, err := ui.ReadClipboardImage()
	if err != nil {
		g.reportUpload(err)
		return
	}
	g.reportUpload(g.switcher.Upload(data))
}

func (g *Game) reportUpload(err error) {
	status := "Imagen aplicada"
	switch {
	case err == nil:
	case errors.Is(err, background.ErrNotImage):
		status = "El archivo no es una imagen"
	case errors.Is(err, ui.ErrClipboardEmpty):
		status = "El portapapeles no contiene una imagen"
	case errors.Is(err, ui.ErrDialogUnavailable):
		status = "Arrastra una imagen a la ventana"
	default:
		status = "No se pudo cargar la imagen"
	}
	if err != nil {
		g.log.Warnf("upload: %v", err)
	}
	g.page.Switcher().SetStatus(status)
}

func (g *Game) syncViewportSizes() {
	for _, v := range g.viewers {
		vp, ok := g.page.Viewport(v.Container())
		if !ok {
			continue
		}
		v.Resize(vp.Size())
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			for _, v := range g.viewers {
				if watch.Matches(g.cfg.AssetRoot, v.TryPaths(), path) {
					g.log.Infof("%s changed, reloading %s", path, v.ID())
					v.LoadModel(nil)
				}
			}
		case err := <-g.watcher.Errors:
			g.log.Warnf("watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) syncPreview() {
	if !g.previewDirty {
		return
	}
	g.previewDirty = false
	p := g.switcher.Preview()
	var img image.Image
	if p.Image != "" {
		src, err := g.resolver.Decode(p.Image)
		if err != nil {
			g.log.Warnf("preview: %v", err)
		} else {
			img = src
		}
	}
	g.page.Switcher().SetPreview(p, img)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.paintPage(screen)
	g.page.Draw(screen)
	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// paintPage draws the background image over the whole window and the side
// decoration in the margins left and right of the content column.
func (g *Game) paintPage(screen *ebiten.Image) {
	screen.Fill(pageColor)
	style := g.switcher.Style()
	bounds := screen.Bounds()

	if img, _ := g.resolver.Image(style.Property(background.PropBackground)); img != nil {
		background.DrawCover(screen, img, bounds)
	}

	sides, _ := g.resolver.Image(style.Property(background.PropSides))
	content := g.page.ContentRect()
	if sides == nil || content.Empty() {
		return
	}
	background.DrawCover(screen, sides, image.Rect(bounds.Min.X, bounds.Min.Y, content.Min.X, bounds.Max.Y))
	background.DrawCover(screen, sides, image.Rect(content.Max.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	for _, v := range g.viewers {
		v.Dispose()
	}
}
