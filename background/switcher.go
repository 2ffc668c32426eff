package background

import (
	"fmt"
	"os"

	"github.com/ADavid9914/PaginaWebTRB/logging"
)

type Presets struct {
	Background string
	Sides      string
}

var DefaultPresets = Presets{
	Background: URL("multimedia/Fotos/chatgpt.jpg"),
	Sides:      URL("multimedia/Fotos/drone-sides.jpg"),
}

// Preview describes the switcher's preview box. An empty Image means the
// neutral gradient.
type Preview struct {
	Image    string
	Outlined bool
}

// Switcher is the only writer of the background style properties.
type Switcher struct {
	style     *Style
	presets   Presets
	log       logging.Logger
	listeners []func()
}

func NewSwitcher(style *Style, presets Presets, logger logging.Logger) *Switcher {
	if style == nil {
		style = NewStyle()
	}
	if presets.Background == "" {
		presets.Background = DefaultPresets.Background
	}
	if presets.Sides == "" {
		presets.Sides = DefaultPresets.Sides
	}
	return &Switcher{style: style, presets: presets, log: logging.OrNop(logger)}
}

func (s *Switcher) Style() *Style { return s.style }

// OnChange registers fn to run after every property change.
func (s *Switcher) OnChange(fn func()) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Switcher) set(values map[string]string) {
	for k, v := range values {
		s.style.SetProperty(k, v)
	}
	for _, fn := range s.listeners {
		fn()
	}
}

func (s *Switcher) UseBackgroundPreset() {
	s.set(map[string]string{PropBackground: s.presets.Background})
}

func (s *Switcher) UseSidesPreset() {
	s.set(map[string]string{PropSides: s.presets.Sides})
}

// Upload sets both properties to the same data URL built from data.
// Content that is not an image leaves the style untouched.
func (s *Switcher) Upload(data []byte) error {
	ref, err := DataURL(data)
	if err != nil {
		s.log.Warnf("upload rejected: %v", err)
		return err
	}
	v := URL(ref)
	s.set(map[string]string{PropBackground: v, PropSides: v})
	s.log.Infof("uploaded background (%d bytes)", len(data))
	return nil
}

func (s *Switcher) UploadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("background: read %s: %w", path, err)
	}
	if err := s.Upload(data); err != nil {
		return fmt.Errorf("background: %s: %w", path, err)
	}
	return nil
}

func (s *Switcher) Reset() {
	s.set(map[string]string{PropBackground: None, PropSides: None})
}

func (s *Switcher) Preview() Preview {
	p := Preview{Outlined: s.style.Property(PropSides) != None}
	if bg := s.style.Property(PropBackground); bg != None {
		p.Image = bg
	}
	return p
}
