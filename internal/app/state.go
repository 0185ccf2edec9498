// Package app provides application state, events and the catalog watcher for
// the kiosk.
package app

import (
	"fmt"
	"sync"

	"holomat/internal/config"
	"holomat/internal/grid"
	"holomat/internal/logging"
	"holomat/internal/registry"
	"holomat/pkg/colorutil"
)

// State holds the kiosk state: the app catalog and the overlay settings.
type State struct {
	mu sync.RWMutex

	Config config.Config

	catalog *registry.Catalog
	overlay OverlaySettings

	// Event listeners
	listeners map[EventType][]EventListener
}

// OverlaySettings is the user-adjustable overlay configuration.
type OverlaySettings struct {
	Tool       grid.Tool
	Background grid.Background
	Theme      string
	MmPerPixel float64
	Gradient   bool
}

// Scale returns the grid scale for the current settings.
func (o OverlaySettings) Scale() grid.Scale {
	return grid.Scale{MmPerPixel: o.MmPerPixel}
}

// ColorTheme returns the resolved color theme.
func (o OverlaySettings) ColorTheme() colorutil.Theme {
	return colorutil.ThemeByName(o.Theme)
}

// ApplyFlags sets the fields given explicitly on the command line. It runs
// after saved preferences so flags keep priority.
func (o *OverlaySettings) ApplyFlags(f config.Flags) {
	if f.MmPerPixel > 0 {
		o.MmPerPixel = f.MmPerPixel
	}
	if f.Theme != "" {
		o.Theme = f.Theme
	}
	if tool, err := grid.ParseTool(f.Tool); err == nil {
		o.Tool = tool
	}
}

// EventType identifies different application events.
type EventType int

const (
	EventCatalogLoaded    EventType = iota // data: *registry.Catalog
	EventCatalogError                      // data: error
	EventOverlayChanged                    // data: OverlaySettings
	EventActiveAppChanged                  // data: registry.App
	EventAppLaunched                       // data: registry.App
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates the state from a resolved config.
func NewState(cfg config.Config) *State {
	tool, err := grid.ParseTool(cfg.Grid.Tool)
	if err != nil {
		tool = grid.ToolNone
	}
	bg, err := grid.ParseBackground(cfg.Grid.Background)
	if err != nil {
		bg = grid.Background10mm
	}
	return &State{
		Config:  cfg,
		catalog: &registry.Catalog{},
		overlay: OverlaySettings{
			Tool:       tool,
			Background: bg,
			Theme:      cfg.Grid.Theme,
			MmPerPixel: cfg.Grid.MmPerPixel,
			Gradient:   cfg.Grid.Gradient,
		},
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit calls the listeners of event in registration order.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadCatalog reads the app catalog at path. On failure the previous
// catalog is kept and EventCatalogError is emitted.
func (s *State) LoadCatalog(path string) error {
	cat, err := registry.Load(path)
	if err != nil {
		logging.Logger().Warn("Catalog: load failed", "path", path, "err", err)
		s.Emit(EventCatalogError, err)
		return fmt.Errorf("app: load catalog: %w", err)
	}

	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()

	logging.Logger().Info(fmt.Sprintf("Catalog: loaded %d apps", len(cat.Enabled())), "path", path)
	s.Emit(EventCatalogLoaded, cat)
	return nil
}

// Catalog returns the current catalog.
func (s *State) Catalog() *registry.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Overlay returns the current overlay settings.
func (s *State) Overlay() OverlaySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlay
}

// UpdateOverlay applies fn to the overlay settings and emits
// EventOverlayChanged when anything changed.
func (s *State) UpdateOverlay(fn func(*OverlaySettings)) {
	s.mu.Lock()
	before := s.overlay
	fn(&s.overlay)
	if !(s.overlay.MmPerPixel > 0) {
		s.overlay.MmPerPixel = grid.DefaultMmPerPixel
	}
	after := s.overlay
	s.mu.Unlock()

	if after != before {
		s.Emit(EventOverlayChanged, after)
	}
}

// SetActiveApp announces the app in front of the carousel.
func (s *State) SetActiveApp(app registry.App) {
	s.Emit(EventActiveAppChanged, app)
}

// Launch announces that app was activated.
func (s *State) Launch(app registry.App) {
	logging.Logger().Info("App: launch", "id", app.ID)
	s.Emit(EventAppLaunched, app)
}
