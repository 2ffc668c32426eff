package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsModelFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"cubo2.glb", true},
		{"multimedia/SHAHED.GLB", true},
		{"scene.gltf", true},
		{"scene.bin", true},
		{"notes.txt", false},
		{"cubo2.glb.swp", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsModelFile(tt.path))
		})
	}
}

func TestDirs(t *testing.T) {
	got := Dirs("public", []string{
		"cubo2.glb",
		"multimedia/cubo2.glb",
		"multimedia/shahed.glb",
		"multimedia/archivosblender/cubo2.glb",
	})
	assert.Equal(t, []string{
		"public",
		filepath.Join("public", "multimedia"),
		filepath.Join("public", "multimedia", "archivosblender"),
	}, got)
}

func TestMatches(t *testing.T) {
	candidates := []string{"cubo2.glb", "multimedia/cubo2.glb"}
	root := "public"

	assert.True(t, Matches(root, candidates, filepath.Join("public", "multimedia", "cubo2.glb")))
	assert.True(t, Matches(root, candidates, filepath.Join("public", "multimedia", "cubo2.bin")))
	assert.False(t, Matches(root, candidates, filepath.Join("public", "multimedia", "shahed.glb")))
	assert.False(t, Matches(root, candidates, filepath.Join("public", "other", "cubo2.glb")))
}

func TestWatcherReportsModelWrites(t *testing.T) {
	dir := t.TempDir()
	w, watched, err := NewWatcher(dir, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []string{dir}, watched)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	model := filepath.Join(dir, "cubo2.glb")
	require.NoError(t, os.WriteFile(model, []byte("glTF"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, model, got)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for model write")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, _, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
