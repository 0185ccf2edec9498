package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holomat/internal/carousel"
	"holomat/internal/grid"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "holomat.toml", `
apps = "catalog.yaml"

[carousel]
windowed = false
window_size = 7
sensitivity = 0.5
click_debounce = "250ms"

[grid]
mm_per_pixel = 0.3
tool = "protractor"
theme = "matrix"

[window]
fullscreen = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Resolve(Flags{})
	require.NoError(t, cfg.Validate())

	assert.Equal(t, filepath.Join(dir, "catalog.yaml"), cfg.Apps)
	assert.Equal(t, LayoutCarousel, cfg.Carousel.Layout)
	assert.Equal(t, 0.3, cfg.Grid.MmPerPixel)
	assert.Equal(t, "10mm", cfg.Grid.Background)
	assert.Equal(t, "protractor", cfg.Grid.Tool)
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, float32(1280), cfg.Window.Width)

	cc := cfg.CarouselConfig()
	assert.False(t, cc.Windowed)
	assert.Equal(t, 7, cc.WindowSize)
	assert.Equal(t, 0.5, cc.Sensitivity)
	assert.Equal(t, 250*time.Millisecond, cc.ClickDebounce)
	assert.Equal(t, carousel.DefaultConfig().WheelThrottle, cc.WheelThrottle)
	assert.Equal(t, grid.Scale{MmPerPixel: 0.3}, cfg.Scale())
}

func TestResolveDefaultsAndFlags(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	assert.Equal(t, "apps.yaml", cfg.Apps)
	assert.Equal(t, grid.DefaultMmPerPixel, cfg.Grid.MmPerPixel)
	assert.Equal(t, "cyber", cfg.Grid.Theme)
	assert.Equal(t, "none", cfg.Grid.Tool)
	assert.Equal(t, carousel.DefaultConfig(), cfg.CarouselConfig())

	cfg = Config{Grid: Grid{Theme: "night"}}
	cfg.Resolve(Flags{Apps: "/srv/apps.yaml", ShowAll: true, Tray: true, MmPerPixel: 0.2, Theme: "arctic", Tool: "ruler-mm"})
	assert.Equal(t, "/srv/apps.yaml", cfg.Apps)
	assert.Equal(t, LayoutTray, cfg.Carousel.Layout)
	assert.Equal(t, 0.2, cfg.Grid.MmPerPixel)
	assert.Equal(t, "arctic", cfg.Grid.Theme)
	assert.Equal(t, "ruler-mm", cfg.Grid.Tool)
	assert.False(t, cfg.CarouselConfig().Windowed)
	assert.Equal(t, 0.2, cfg.Overrides().MmPerPixel)
	assert.True(t, cfg.Overrides().ShowAll)
}

func TestValidateRejectsUnknownNames(t *testing.T) {
	cfg := Config{Grid: Grid{Tool: "compass"}}
	cfg.Resolve(Flags{})
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid.tool")

	cfg = Config{Carousel: Carousel{Layout: "grid"}}
	cfg.Resolve(Flags{})
	assert.Error(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "config: read")

	bad := writeFile(t, t.TempDir(), "bad.toml", "[carousel\nwindowed = ")
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")

	dur := writeFile(t, t.TempDir(), "dur.toml", "[carousel]\nwheel_throttle = \"soon\"\n")
	_, err = Load(dur)
	assert.Error(t, err)
}
