// Package config loads the application settings: an embedded default that
// an on-disk file of the same shape replaces when present.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/ADavid9914/PaginaWebTRB/background"
	"github.com/ADavid9914/PaginaWebTRB/coordinator"
	"github.com/ADavid9914/PaginaWebTRB/viewer"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfig []byte

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Background struct {
	Image string `yaml:"image"`
	Sides string `yaml:"sides"`
}

// ViewerSpec mirrors viewer.Config. Pointer fields default to the viewer's
// own defaults when omitted.
type ViewerSpec struct {
	ID           string   `yaml:"id"`
	TryPaths     []string `yaml:"try_paths"`
	AutoStart    *bool    `yaml:"auto_start"`
	AutoPlay     *bool    `yaml:"auto_play"`
	LoadOnCreate *bool    `yaml:"load_on_create"`
}

type Tab struct {
	Target      string     `yaml:"target"`
	Label       string     `yaml:"label"`
	Viewport    string     `yaml:"viewport"`
	Description string     `yaml:"description"`
	Lazy        bool       `yaml:"lazy"`
	Viewer      ViewerSpec `yaml:"viewer"`
}

type Config struct {
	Window      Window     `yaml:"window"`
	AssetRoot   string     `yaml:"asset_root"`
	Debug       bool       `yaml:"debug"`
	StepSeconds float64    `yaml:"step_seconds"`
	Watch       bool       `yaml:"watch"`
	InitialTab  string     `yaml:"initial_tab"`
	Background  Background `yaml:"background"`
	Tabs        []Tab      `yaml:"tabs"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	return Parse(defaultConfig)
}

// Load reads path when it exists and falls back to the embedded default
// otherwise. An empty path always uses the default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default()
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = "Simulaciones 3D"
	}
	if c.Window.Width <= 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 820
	}
	if c.StepSeconds <= 0 {
		c.StepSeconds = viewer.DefaultStepSeconds
	}
	if c.Background.Image == "" {
		c.Background.Image = background.DefaultPresets.Background
	}
	if c.Background.Sides == "" {
		c.Background.Sides = background.DefaultPresets.Sides
	}
	for i := range c.Tabs {
		if c.Tabs[i].Viewer.ID == "" {
			c.Tabs[i].Viewer.ID = c.Tabs[i].Target
		}
	}
}

func (c *Config) Validate() error {
	if len(c.Tabs) == 0 {
		return fmt.Errorf("%w: no tabs", ErrInvalid)
	}
	targets := make(map[string]bool)
	viewports := make(map[string]bool)
	for i, t := range c.Tabs {
		if t.Target == "" || t.Viewport == "" {
			return fmt.Errorf("%w: tab %d needs target and viewport", ErrInvalid, i)
		}
		if targets[t.Target] {
			return fmt.Errorf("%w: duplicate tab %q", ErrInvalid, t.Target)
		}
		if viewports[t.Viewport] {
			return fmt.Errorf("%w: duplicate viewport %q", ErrInvalid, t.Viewport)
		}
		targets[t.Target] = true
		viewports[t.Viewport] = true
	}
	if c.InitialTab != "" && !targets[c.InitialTab] {
		return fmt.Errorf("%w: initial tab %q is not a tab", ErrInvalid, c.InitialTab)
	}
	return nil
}

// Tab returns the tab whose panel is target.
func (c *Config) Tab(target string) (Tab, bool) {
	for _, t := range c.Tabs {
		if t.Target == target {
			return t, true
		}
	}
	return Tab{}, false
}

// CoordinatorTabs converts the tab list for the coordinator.
func (c *Config) CoordinatorTabs() []coordinator.Tab {
	out := make([]coordinator.Tab, 0, len(c.Tabs))
	for _, t := range c.Tabs {
		out = append(out, coordinator.Tab{
			Target:   t.Target,
			Label:    t.Label,
			Viewport: t.Viewport,
			Lazy:     t.Lazy,
		})
	}
	return out
}

// ViewerConfig builds the viewer configuration for a tab.
func (t Tab) ViewerConfig(stepSeconds float64) viewer.Config {
	cfg := viewer.DefaultConfig()
	cfg.ID = t.Viewer.ID
	cfg.Container = t.Viewport
	if len(t.Viewer.TryPaths) > 0 {
		cfg.TryPaths = append([]string(nil), t.Viewer.TryPaths...)
	}
	if t.Viewer.AutoStart != nil {
		cfg.AutoStart = *t.Viewer.AutoStart
	}
	if t.Viewer.AutoPlay != nil {
		cfg.AutoPlay = *t.Viewer.AutoPlay
	}
	if t.Viewer.LoadOnCreate != nil {
		cfg.LoadOnCreate = *t.Viewer.LoadOnCreate
	}
	if stepSeconds > 0 {
		cfg.StepSeconds = stepSeconds
	}
	return cfg
}

func (c *Config) Presets() background.Presets {
	return background.Presets{Background: c.Background.Image, Sides: c.Background.Sides}
}
