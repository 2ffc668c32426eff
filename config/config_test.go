package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ADavid9914/PaginaWebTRB/background"
	"github.com/ADavid9914/PaginaWebTRB/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "public", cfg.AssetRoot)
	assert.Equal(t, 0.5, cfg.StepSeconds)
	assert.Equal(t, "panel-v1", cfg.InitialTab)
	assert.Equal(t, background.DefaultPresets, cfg.Presets())
	require.Len(t, cfg.Tabs, 2)

	v1, v2 := cfg.Tabs[0], cfg.Tabs[1]
	assert.False(t, v1.Lazy)
	assert.True(t, v2.Lazy)
	assert.Equal(t, viewer.DefaultTryPaths, v1.Viewer.TryPaths)
	assert.Equal(t, []string{"shahed.glb", "multimedia/shahed.glb", "multimedia/archivosblender/shahed.glb"}, v2.Viewer.TryPaths)
}

func TestViewerConfig(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	tab, ok := cfg.Tab("panel-v2")
	require.True(t, ok)

	vc := tab.ViewerConfig(0.25)

	assert.Equal(t, "v2", vc.ID)
	assert.Equal(t, "escenario3D_v2", vc.Container)
	assert.True(t, vc.AutoStart)
	assert.True(t, vc.LoadOnCreate)
	assert.False(t, vc.AutoPlay)
	assert.Equal(t, 0.25, vc.StepSeconds)
}

func TestViewerConfigOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
tabs:
  - target: p
    viewport: vp
    viewer:
      auto_play: true
      load_on_create: false
`))
	require.NoError(t, err)

	vc := cfg.Tabs[0].ViewerConfig(0)

	assert.Equal(t, "p", vc.ID)
	assert.True(t, vc.AutoPlay)
	assert.False(t, vc.LoadOnCreate)
	assert.Equal(t, viewer.DefaultTryPaths, vc.TryPaths)
	assert.Equal(t, viewer.DefaultStepSeconds, vc.StepSeconds)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "no tabs", yaml: "debug: true\n"},
		{name: "missing viewport", yaml: "tabs:\n  - target: a\n"},
		{name: "duplicate target", yaml: "tabs:\n  - {target: a, viewport: x}\n  - {target: a, viewport: y}\n"},
		{name: "duplicate viewport", yaml: "tabs:\n  - {target: a, viewport: x}\n  - {target: b, viewport: x}\n"},
		{name: "unknown initial", yaml: "initial_tab: z\ntabs:\n  - {target: a, viewport: x}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("tabs: [unterminated"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses default", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Len(t, cfg.Tabs, 2)
	})

	t.Run("disk file wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("asset_root: assets\ntabs:\n  - {target: only, viewport: vp}\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "assets", cfg.AssetRoot)
		assert.Len(t, cfg.Tabs, 1)
		assert.Equal(t, 1280, cfg.Window.Width)
	})

	t.Run("invalid disk file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tabs: []\n"), 0o644))
		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrInvalid))
	})
}
