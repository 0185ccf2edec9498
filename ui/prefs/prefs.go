// Package prefs persists the settings a user changes at runtime from the
// kiosk toolbar.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"holomat/internal/app"
	"holomat/internal/grid"
	"holomat/internal/logging"
)

const prefsFile = "preferences.json"

// Preference keys.
const (
	KeyMmPerPixel         = "mmPerPixel"
	KeyBackgroundGrid     = "backgroundGrid"
	KeyBackgroundGradient = "backgroundGradient"
	KeyOverlayTool        = "overlayTool"
	KeyOverlayTheme       = "overlayTheme"
	KeyShowAllApps        = "showAllApps"
)

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Load reads preferences from ~/.config/holomat/preferences.json.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return LoadFrom(filepath.Join(configDir, "holomat"))
}

// LoadFrom reads preferences from dir. A missing or corrupt file yields
// empty preferences.
func LoadFrom(dir string) *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   filepath.Join(dir, prefsFile),
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		logging.Logger().Warn("Prefs: ignoring corrupt file", "path", p.path, "err", err)
		p.values = make(map[string]interface{})
	}
	return p
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string { return p.path }

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("prefs: write %s: %w", p.path, err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: write %s: %w", p.path, err)
	}
	return nil
}

// Has reports whether key is set.
func (p *Prefs) Has(key string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.values[key]
	return ok
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.set(key, val)
}

// StringWithFallback returns a string preference, or fallback if not set.
func (p *Prefs) StringWithFallback(key, fallback string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if s, ok := p.values[key].(string); ok {
		return s
	}
	return fallback
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.set(key, val)
}

// Bool returns a bool preference, or fallback if not set.
func (p *Prefs) Bool(key string, fallback bool) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if b, ok := p.values[key].(bool); ok {
		return b
	}
	return fallback
}

// SetBool stores a bool preference.
func (p *Prefs) SetBool(key string, val bool) {
	p.set(key, val)
}

func (p *Prefs) set(key string, val interface{}) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// ApplyOverlay overrides o with any saved overlay preferences. Invalid saved
// values are skipped.
func (p *Prefs) ApplyOverlay(o *app.OverlaySettings) {
	if v := p.FloatWithFallback(KeyMmPerPixel, 0); v > 0 {
		o.MmPerPixel = v
	}
	if bg, err := grid.ParseBackground(p.StringWithFallback(KeyBackgroundGrid, string(o.Background))); err == nil {
		o.Background = bg
	}
	if tool, err := grid.ParseTool(p.StringWithFallback(KeyOverlayTool, string(o.Tool))); err == nil {
		o.Tool = tool
	}
	o.Theme = p.StringWithFallback(KeyOverlayTheme, o.Theme)
	o.Gradient = p.Bool(KeyBackgroundGradient, o.Gradient)
}

// StoreOverlay records o. Call Save to persist it.
func (p *Prefs) StoreOverlay(o app.OverlaySettings) {
	p.SetFloat(KeyMmPerPixel, o.MmPerPixel)
	p.SetString(KeyBackgroundGrid, string(o.Background))
	p.SetString(KeyOverlayTool, string(o.Tool))
	p.SetString(KeyOverlayTheme, o.Theme)
	p.SetBool(KeyBackgroundGradient, o.Gradient)
}
