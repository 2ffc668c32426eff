package viewer

import (
	"context"
	"fmt"

	"github.com/ADavid9914/PaginaWebTRB/engine"
	"github.com/ADavid9914/PaginaWebTRB/logging"
	"github.com/go-gl/mathgl/mgl32"
)

type loadResult struct {
	gen   int
	path  string
	asset *engine.Asset
	err   error
}

// LoadModel starts loading the first candidate that succeeds, in order. A
// nil or empty list uses the configured TryPaths. Any load still in flight is
// cancelled and its result discarded. The outcome is applied by Poll.
func (v *Viewer) LoadModel(paths []string) {
	if len(paths) == 0 {
		paths = v.cfg.TryPaths
	}
	paths = append([]string(nil), paths...)

	if v.cancelLoad != nil {
		v.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancelLoad = cancel
	v.loadGen++
	v.loading = true
	gen := v.loadGen

	go func() {
		asset, path, err := loadFirst(ctx, v.loader, paths, v.log)
		select {
		case v.loads <- loadResult{gen: gen, path: path, asset: asset, err: err}:
		case <-ctx.Done():
		}
	}()
}

func loadFirst(ctx context.Context, loader Loader, paths []string, log logging.Logger) (*engine.Asset, string, error) {
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		log.Debugf("trying %s", p)
		asset, err := loader.Load(ctx, p)
		if err != nil {
			log.Warnf("could not load %s: %v", p, err)
			continue
		}
		if asset == nil || asset.Root == nil {
			log.Warnf("could not load %s: empty asset", p)
			continue
		}
		return asset, p, nil
	}
	return nil, "", fmt.Errorf("%d candidates: %w", len(paths), ErrNoCandidate)
}

// Poll applies finished loads. It never blocks and reports whether the
// scene changed.
func (v *Viewer) Poll() bool {
	changed := false
	for {
		select {
		case res := <-v.loads:
			if v.apply(res) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (v *Viewer) apply(res loadResult) bool {
	if res.gen != v.loadGen {
		return false
	}
	v.loading = false
	v.cancelLoad = nil
	if res.err != nil {
		v.log.Warnf("%v, using placeholder", res.err)
		v.usePlaceholder()
	} else {
		v.attach(res.asset, res.path)
	}
	if v.cfg.OnLoad != nil {
		v.cfg.OnLoad()
	}
	return true
}

func (v *Viewer) detachModel() {
	if v.model != nil && v.model != v.placeholder {
		v.scene.Remove(v.model)
	}
	v.model = nil
	v.mixer = nil
	v.current = 0
	v.duration = 0
}

func (v *Viewer) attach(asset *engine.Asset, path string) {
	v.detachModel()
	v.placeholder.Visible = false

	root := asset.Root
	root.Position = mgl32.Vec3{0, 1, 0}
	v.scene.Add(root)
	v.model = root

	if len(asset.Clips) == 0 {
		v.setPlaying(false)
		v.log.Infof("loaded %s (no animations)", path)
		return
	}
	v.mixer = v.newMixer(asset)
	v.duration = asset.Duration()
	v.setPlaying(v.cfg.AutoPlay)
	v.log.Infof("loaded %s (%d clips, %.2fs)", path, len(asset.Clips), v.duration)
}

func (v *Viewer) usePlaceholder() {
	v.detachModel()
	v.placeholder.Visible = true
	v.model = v.placeholder
	v.setPlaying(false)
}
