package ui

import (
	"errors"
	"image"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedSeekBar(limit float64) *SeekBar {
	s := newSeekBar(110, 20)
	s.container.GetWidget().Rect = image.Rect(100, 50, 210, 70)
	s.Set(limit, 0, false)
	return s
}

func TestSeekBarValueAt(t *testing.T) {
	s := placedSeekBar(4)
	tests := []struct {
		name string
		x    int
		want float64
	}{
		{name: "left of track", x: 0, want: 0},
		{name: "start", x: 105, want: 0},
		{name: "middle", x: 155, want: 2},
		{name: "end", x: 205, want: 4},
		{name: "right of track", x: 400, want: 4},
		{name: "millisecond rounding", x: 106, want: 0.04},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.ValueAt(tt.x), 1e-9)
		})
	}
}

func TestSeekBarPreviewThenCommit(t *testing.T) {
	s := placedSeekBar(4)
	var previews, commits []float64
	s.OnPreview = func(v float64) { previews = append(previews, v) }
	s.OnCommit = func(v float64) { commits = append(commits, v) }

	assert.False(t, s.Press(10, 10), "press outside")
	require.True(t, s.Press(155, 60))
	s.Drag(205)

	s.Set(4, 1, false)
	assert.Equal(t, 4.0, s.Value(), "sync must not move a dragged handle")
	assert.Empty(t, commits)

	s.Release()
	assert.Equal(t, []float64{2, 4}, previews)
	assert.Equal(t, []float64{4}, commits)
	assert.False(t, s.Dragging())

	s.Release()
	assert.Len(t, commits, 1)
}

func TestSeekBarDisabled(t *testing.T) {
	s := placedSeekBar(4)
	s.Set(0, 3, true)

	assert.True(t, s.Disabled())
	assert.Equal(t, 1.0, s.Limit())
	assert.Equal(t, 1.0, s.Value())
	assert.False(t, s.Press(155, 60))
}

func TestReadDropped(t *testing.T) {
	fsys := fstest.MapFS{
		"photos/sky.png": &fstest.MapFile{Data: []byte("png-bytes")},
	}
	data, name, err := ReadDropped(fsys)
	require.NoError(t, err)
	assert.Equal(t, "photos/sky.png", name)
	assert.Equal(t, []byte("png-bytes"), data)

	_, _, err = ReadDropped(fstest.MapFS{})
	assert.True(t, errors.Is(err, ErrNoDroppedFile))

	_, _, err = ReadDropped(nil)
	assert.True(t, errors.Is(err, ErrNoDroppedFile))
}
