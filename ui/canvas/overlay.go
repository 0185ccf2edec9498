// Package canvas draws the measurement overlays behind the app carousel.
package canvas

import (
	"holomat/internal/app"
	"holomat/internal/grid"
	"holomat/pkg/colorutil"
)

// Scene is everything the overlay renderer draws for one frame. It is built
// from the overlay settings and the viewport and holds no drawing state.
type Scene struct {
	Viewport grid.Viewport
	Theme    colorutil.Theme
	Tool     grid.Tool

	Grid     grid.BackgroundGrid
	Gradient bool

	// Ticks is set for the ruler tools.
	Ticks []grid.TickMark

	// Protractor is set for grid.ToolProtractor.
	Protractor grid.Protractor

	// Hardware is set for grid.ToolHardware.
	Hardware grid.Reference
}

// BuildScene lays out the overlay for the given settings and viewport.
func BuildScene(o app.OverlaySettings, vp grid.Viewport) Scene {
	s := o.Scale()
	scene := Scene{
		Viewport: vp,
		Theme:    o.ColorTheme(),
		Tool:     o.Tool,
		Grid:     grid.BackgroundLines(o.Background, s, vp),
		Gradient: o.Gradient,
	}

	switch o.Tool {
	case grid.ToolRulerInches:
		scene.Ticks = grid.InchTicks(s, vp)
	case grid.ToolRulerMm:
		scene.Ticks = grid.MmTicks(s, vp)
	case grid.ToolProtractor:
		scene.Protractor = grid.NewProtractor(s, vp)
	case grid.ToolHardware:
		scene.Hardware = grid.HardwareReference(s)
	}
	return scene
}

// Horizontal reports whether the ruler runs along the top edge. Rulers
// follow the long side of the viewport.
func (s Scene) Horizontal() bool {
	return s.Viewport.Width >= s.Viewport.Height
}

// Empty reports whether there is nothing to draw besides the backdrop.
func (s Scene) Empty() bool {
	return len(s.Grid.Vertical) == 0 && len(s.Grid.Horizontal) == 0 &&
		len(s.Ticks) == 0 && len(s.Protractor.Lines) == 0 &&
		len(s.Hardware.Holes) == 0 && len(s.Hardware.Lengths) == 0
}
