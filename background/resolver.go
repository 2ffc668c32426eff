package background

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ADavid9914/PaginaWebTRB/logging"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Resolver turns style property values into images. Results, failures
// included, are cached by value so a broken reference is reported once.
type Resolver struct {
	root   string
	log    logging.Logger
	images map[string]*ebiten.Image
	failed map[string]error
}

func NewResolver(root string, logger logging.Logger) *Resolver {
	return &Resolver{
		root:   root,
		log:    logging.OrNop(logger),
		images: make(map[string]*ebiten.Image),
		failed: make(map[string]error),
	}
}

// Image returns the image for value, or nil for None.
func (r *Resolver) Image(value string) (*ebiten.Image, error) {
	if value == "" || value == None {
		return nil, nil
	}
	if img, ok := r.images[value]; ok {
		return img, nil
	}
	if err, ok := r.failed[value]; ok {
		return nil, err
	}
	src, err := r.Decode(value)
	if err != nil {
		r.failed[value] = err
		r.log.Warnf("background %s: %v", shorten(value), err)
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	r.images[value] = img
	return img, nil
}

// Decode reads the image a url(...) value points to: a data URL or a path
// relative to the asset root.
func (r *Resolver) Decode(value string) (image.Image, error) {
	ref, ok := ParseURL(value)
	if !ok {
		return nil, fmt.Errorf("not a url value: %q", shorten(value))
	}
	var data []byte
	if strings.HasPrefix(ref, "data:") {
		_, payload, err := DecodeDataURL(ref)
		if err != nil {
			return nil, err
		}
		data = payload
	} else {
		b, err := os.ReadFile(r.path(ref))
		if err != nil {
			return nil, err
		}
		data = b
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func (r *Resolver) path(ref string) string {
	if filepath.IsAbs(ref) || r.root == "" {
		return ref
	}
	return filepath.Join(r.root, filepath.FromSlash(ref))
}

func shorten(s string) string {
	if len(s) <= 64 {
		return s
	}
	return s[:61] + "..."
}
