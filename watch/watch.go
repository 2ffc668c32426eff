// Package watch reports changes to model files so open viewers can reload
// them.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches every existing directory in dirs. Missing directories
// are skipped; the returned list names the ones actually watched.
func NewWatcher(dirs ...string) (*Watcher, []string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	var watched []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, nil, err
		}
		watched = append(watched, dir)
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, watched, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsModelFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsModelFile reports whether path is a glTF model or one of its buffers.
func IsModelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf", ".bin":
		return true
	}
	return false
}

// Dirs returns the distinct directories holding the candidate paths,
// resolved against root.
func Dirs(root string, candidates []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range candidates {
		dir := filepath.Dir(resolve(root, c))
		if seen[dir] {
			continue
		}
		seen[dir] = true
		out = append(out, dir)
	}
	return out
}

// Matches reports whether changed is one of the candidates, or a buffer
// file sitting next to one.
func Matches(root string, candidates []string, changed string) bool {
	changed = filepath.Clean(changed)
	for _, c := range candidates {
		p := resolve(root, c)
		if p == changed {
			return true
		}
		if strings.EqualFold(filepath.Ext(changed), ".bin") && filepath.Dir(p) == filepath.Dir(changed) {
			return true
		}
	}
	return false
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(root, filepath.FromSlash(path))
}
