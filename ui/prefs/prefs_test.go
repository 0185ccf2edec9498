package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holomat/internal/app"
	"holomat/internal/grid"
)

func TestSaveAndReload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "holomat")
	p := LoadFrom(dir)
	assert.False(t, p.Has(KeyOverlayTool))

	p.SetFloat(KeyMmPerPixel, 0.3)
	p.SetString(KeyOverlayTheme, "arctic")
	p.SetBool(KeyShowAllApps, true)
	require.NoError(t, p.Save())

	q := LoadFrom(dir)
	assert.Equal(t, 0.3, q.FloatWithFallback(KeyMmPerPixel, 1))
	assert.Equal(t, "arctic", q.StringWithFallback(KeyOverlayTheme, "cyber"))
	assert.True(t, q.Bool(KeyShowAllApps, false))
	assert.Equal(t, 2.5, q.FloatWithFallback("missing", 2.5))
	assert.Equal(t, "x", q.StringWithFallback(KeyMmPerPixel, "x"), "wrong type falls back")
}

func TestCorruptFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefsFile), []byte("{not json"), 0o644))
	p := LoadFrom(dir)
	assert.False(t, p.Has(KeyMmPerPixel))
	p.SetBool(KeyBackgroundGradient, true)
	require.NoError(t, p.Save())
}

func TestOverlayRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := LoadFrom(dir)
	p.StoreOverlay(app.OverlaySettings{
		Tool:       grid.ToolHardware,
		Background: grid.BackgroundInches,
		Theme:      "night",
		MmPerPixel: 0.25,
		Gradient:   true,
	})
	require.NoError(t, p.Save())

	o := app.OverlaySettings{Tool: grid.ToolNone, Background: grid.Background10mm, Theme: "cyber", MmPerPixel: 0.265}
	LoadFrom(dir).ApplyOverlay(&o)
	assert.Equal(t, grid.ToolHardware, o.Tool)
	assert.Equal(t, grid.BackgroundInches, o.Background)
	assert.Equal(t, "night", o.Theme)
	assert.Equal(t, 0.25, o.MmPerPixel)
	assert.True(t, o.Gradient)
}

func TestApplyOverlaySkipsInvalid(t *testing.T) {
	p := LoadFrom(t.TempDir())
	p.SetString(KeyOverlayTool, "compass")
	p.SetFloat(KeyMmPerPixel, -1)

	o := app.OverlaySettings{Tool: grid.ToolRulerMm, MmPerPixel: 0.265, Background: grid.BackgroundNone}
	p.ApplyOverlay(&o)
	assert.Equal(t, grid.ToolRulerMm, o.Tool)
	assert.Equal(t, 0.265, o.MmPerPixel)
	assert.Equal(t, grid.BackgroundNone, o.Background)
}

func TestSaveError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	p := LoadFrom(filepath.Join(file, "sub"))
	p.SetBool(KeyShowAllApps, true)
	err := p.Save()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefs: write")
}
