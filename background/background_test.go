package background

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{0x20, 0x40, 0x80, 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStyleDefaultsToNone(t *testing.T) {
	s := NewStyle()
	assert.Equal(t, None, s.Property(PropBackground))
	assert.Equal(t, None, s.Property(PropSides))
	assert.Equal(t, None, s.Property("--unknown"))

	s.SetProperty(PropSides, "")
	assert.Equal(t, None, s.Property(PropSides))
}

func TestPresets(t *testing.T) {
	sw := NewSwitcher(nil, Presets{}, nil)

	sw.UseBackgroundPreset()
	assert.Equal(t, "url('multimedia/Fotos/chatgpt.jpg')", sw.Style().Property(PropBackground))
	assert.Equal(t, None, sw.Style().Property(PropSides))

	sw.UseSidesPreset()
	assert.Equal(t, "url('multimedia/Fotos/drone-sides.jpg')", sw.Style().Property(PropSides))
}

func TestCustomPresets(t *testing.T) {
	sw := NewSwitcher(nil, Presets{Background: URL("a.png")}, nil)
	sw.UseBackgroundPreset()
	sw.UseSidesPreset()
	assert.Equal(t, "url('a.png')", sw.Style().Property(PropBackground))
	assert.Equal(t, DefaultPresets.Sides, sw.Style().Property(PropSides))
}

func TestReset(t *testing.T) {
	sw := NewSwitcher(nil, Presets{}, nil)
	sw.UseBackgroundPreset()
	sw.UseSidesPreset()

	sw.Reset()

	assert.Equal(t, "none", sw.Style().Property(PropBackground))
	assert.Equal(t, "none", sw.Style().Property(PropSides))
	assert.Equal(t, Preview{}, sw.Preview())
}

func TestUploadSetsBothProperties(t *testing.T) {
	sw := NewSwitcher(nil, Presets{}, nil)
	changes := 0
	sw.OnChange(func() { changes++ })

	require.NoError(t, sw.Upload(pngBytes(t, 2, 2)))

	bg := sw.Style().Property(PropBackground)
	assert.Equal(t, bg, sw.Style().Property(PropSides))
	assert.True(t, strings.HasPrefix(bg, "url('data:image/png;base64,"), bg)
	assert.Equal(t, 1, changes)
	assert.Equal(t, Preview{Image: bg, Outlined: true}, sw.Preview())
}

func TestUploadRejectsNonImage(t *testing.T) {
	sw := NewSwitcher(nil, Presets{}, nil)
	sw.UseBackgroundPreset()
	changes := 0
	sw.OnChange(func() { changes++ })

	err := sw.Upload([]byte("just some text, not a picture"))

	assert.True(t, errors.Is(err, ErrNotImage))
	assert.Equal(t, DefaultPresets.Background, sw.Style().Property(PropBackground))
	assert.Equal(t, None, sw.Style().Property(PropSides))
	assert.Zero(t, changes)
}

func TestUploadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upload.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 1, 1), 0o644))
	sw := NewSwitcher(nil, Presets{}, nil)

	require.NoError(t, sw.UploadFile(path))
	assert.NotEqual(t, None, sw.Style().Property(PropSides))

	err := sw.UploadFile(filepath.Join(dir, "missing.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestPreviewOutlineFollowsSides(t *testing.T) {
	sw := NewSwitcher(nil, Presets{}, nil)
	sw.UseSidesPreset()
	assert.Equal(t, Preview{Outlined: true}, sw.Preview())
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "url('a/b.jpg')", want: "a/b.jpg", ok: true},
		{in: `url("a.jpg")`, want: "a.jpg", ok: true},
		{in: "url(a.jpg)", want: "a.jpg", ok: true},
		{in: "none", ok: false},
		{in: "url()", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseURL(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeDataURL(t *testing.T) {
	data := pngBytes(t, 1, 1)
	ref, err := DataURL(data)
	require.NoError(t, err)

	mime, payload, err := DecodeDataURL(ref)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, data, payload)

	_, _, err = DecodeDataURL("data:image/png,plain")
	assert.True(t, errors.Is(err, ErrBadDataURL))
	_, _, err = DecodeDataURL("multimedia/x.png")
	assert.True(t, errors.Is(err, ErrBadDataURL))
}

func TestResolverDecode(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "multimedia", "Fotos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "multimedia", "Fotos", "bg.png"), pngBytes(t, 4, 3), 0o644))
	r := NewResolver(root, nil)

	img, err := r.Decode(URL("multimedia/Fotos/bg.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	ref, err := DataURL(pngBytes(t, 5, 5))
	require.NoError(t, err)
	img, err = r.Decode(URL(ref))
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())

	_, err = r.Decode(URL("multimedia/Fotos/missing.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	img, err = r.Image(None)
	assert.NoError(t, err)
	assert.Nil(t, img)
}

func TestCover(t *testing.T) {
	tests := []struct {
		name          string
		w, h, dw, dh  int
		scale, tx, ty float64
	}{
		{name: "wide source", w: 200, h: 100, dw: 100, dh: 100, scale: 1, tx: -50, ty: 0},
		{name: "tall source", w: 100, h: 400, dw: 200, dh: 200, scale: 2, tx: 0, ty: -300},
		{name: "empty", w: 0, h: 10, dw: 10, dh: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, tx, ty := Cover(tt.w, tt.h, tt.dw, tt.dh)
			assert.InDelta(t, tt.scale, scale, 1e-9)
			assert.InDelta(t, tt.tx, tx, 1e-9)
			assert.InDelta(t, tt.ty, ty, 1e-9)
		})
	}
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	thumb := Thumbnail(src, 16, 8)
	require.NotNil(t, thumb)
	assert.Equal(t, image.Rect(0, 0, 16, 8), thumb.Bounds())
	assert.Nil(t, Thumbnail(nil, 1, 1))
}
