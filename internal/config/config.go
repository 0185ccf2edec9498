// Package config loads the kiosk configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"holomat/internal/carousel"
	"holomat/internal/grid"
	"holomat/internal/logging"
)

// Layout selects how the app list is presented.
type Layout string

const (
	LayoutCarousel Layout = "carousel"
	LayoutTray     Layout = "tray"
)

// Config holds the kiosk settings read from holomat.toml.
type Config struct {
	// Apps is the app catalog path, relative to the config file.
	Apps string `toml:"apps"`

	Carousel Carousel `toml:"carousel"`
	Grid     Grid     `toml:"grid"`
	Window   Window   `toml:"window"`

	dir   string
	flags Flags
}

// Carousel overrides the carousel tuning. Zero values keep the defaults.
type Carousel struct {
	Layout         Layout   `toml:"layout"`
	Windowed       *bool    `toml:"windowed"`
	WindowSize     int      `toml:"window_size"`
	Sensitivity    float64  `toml:"sensitivity"`
	FlickThreshold float64  `toml:"flick_threshold"`
	ClickDebounce  Duration `toml:"click_debounce"`
	WheelThrottle  Duration `toml:"wheel_throttle"`
}

// Grid holds the initial overlay settings. Preferences saved at runtime
// take precedence.
type Grid struct {
	MmPerPixel float64 `toml:"mm_per_pixel"`
	Background string  `toml:"background"`
	Tool       string  `toml:"tool"`
	Theme      string  `toml:"theme"`
	Gradient   bool    `toml:"gradient"`
}

// Window sizes the kiosk window.
type Window struct {
	Width      float32 `toml:"width"`
	Height     float32 `toml:"height"`
	Fullscreen bool    `toml:"fullscreen"`
}

// Duration is a time.Duration written as a string such as "300ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Apps       string
	ShowAll    bool
	Tray       bool
	Fullscreen bool
	MmPerPixel float64
	Theme      string
	Tool       string
}

// Load reads a TOML config file. Unknown keys are logged and ignored.
func Load(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.Logger().Warn("Config: unknown keys ignored", "path", path, "keys", strings.Join(keys, ","))
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Resolve fills in defaults. CLI flags take priority when set.
func (c *Config) Resolve(flags Flags) {
	c.flags = flags
	if flags.Apps != "" {
		c.Apps = flags.Apps
	}
	if flags.ShowAll {
		windowed := false
		c.Carousel.Windowed = &windowed
	}
	if flags.Tray {
		c.Carousel.Layout = LayoutTray
	}
	if flags.Fullscreen {
		c.Window.Fullscreen = true
	}
	if flags.MmPerPixel > 0 {
		c.Grid.MmPerPixel = flags.MmPerPixel
	}
	if flags.Theme != "" {
		c.Grid.Theme = flags.Theme
	}
	if flags.Tool != "" {
		c.Grid.Tool = flags.Tool
	}

	if c.Apps == "" {
		c.Apps = "apps.yaml"
	}
	if !filepath.IsAbs(c.Apps) && c.dir != "" {
		c.Apps = filepath.Join(c.dir, c.Apps)
	}
	if c.Carousel.Layout == "" {
		c.Carousel.Layout = LayoutCarousel
	}
	if c.Grid.MmPerPixel <= 0 {
		c.Grid.MmPerPixel = grid.DefaultMmPerPixel
	}
	if c.Grid.Background == "" {
		c.Grid.Background = string(grid.Background10mm)
	}
	if c.Grid.Tool == "" {
		c.Grid.Tool = string(grid.ToolNone)
	}
	if c.Grid.Theme == "" {
		c.Grid.Theme = "cyber"
	}
	if c.Window.Width <= 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 800
	}
}

// Overrides returns the flags passed to Resolve. Runtime preferences must
// not override the fields set here.
func (c *Config) Overrides() Flags {
	return c.flags
}

// Validate checks enumerated values after Resolve.
func (c *Config) Validate() error {
	if c.Carousel.Layout != LayoutCarousel && c.Carousel.Layout != LayoutTray {
		return fmt.Errorf("config: carousel.layout: unknown layout %q", c.Carousel.Layout)
	}
	if _, err := grid.ParseBackground(c.Grid.Background); err != nil {
		return fmt.Errorf("config: grid.background: %w", err)
	}
	if _, err := grid.ParseTool(c.Grid.Tool); err != nil {
		return fmt.Errorf("config: grid.tool: %w", err)
	}
	if c.Carousel.WindowSize < 0 {
		return fmt.Errorf("config: carousel.window_size: must not be negative, got %d", c.Carousel.WindowSize)
	}
	return nil
}

// CarouselConfig applies the overrides to the carousel defaults.
func (c *Config) CarouselConfig() carousel.Config {
	cfg := carousel.DefaultConfig()
	o := c.Carousel
	if o.Windowed != nil {
		cfg.Windowed = *o.Windowed
	}
	if o.WindowSize > 0 {
		cfg.WindowSize = o.WindowSize
	}
	if o.Sensitivity > 0 {
		cfg.Sensitivity = o.Sensitivity
	}
	if o.FlickThreshold > 0 {
		cfg.FlickThreshold = o.FlickThreshold
	}
	if o.ClickDebounce.Duration > 0 {
		cfg.ClickDebounce = o.ClickDebounce.Duration
	}
	if o.WheelThrottle.Duration > 0 {
		cfg.WheelThrottle = o.WheelThrottle.Duration
	}
	return cfg
}

// Scale returns the grid scale.
func (c *Config) Scale() grid.Scale {
	return grid.Scale{MmPerPixel: c.Grid.MmPerPixel}
}
