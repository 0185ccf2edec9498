package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"holomat/pkg/geometry"
)

// Background selects the grid drawn behind everything else.
type Background string

const (
	Background10mm     Background = "10mm"
	BackgroundInches   Background = "inches"
	BackgroundHardware Background = "hardware"
	BackgroundNone     Background = "none"
)

// Backgrounds lists the selectable backgrounds in menu order.
var Backgrounds = []Background{Background10mm, BackgroundInches, BackgroundHardware, BackgroundNone}

// ParseBackground validates a background name.
func ParseBackground(s string) (Background, error) {
	for _, b := range Backgrounds {
		if string(b) == s {
			return b, nil
		}
	}
	return BackgroundNone, fmt.Errorf("grid: unknown background %q", s)
}

// GradientStop is one stop of the radial vignette laid over the grid:
// Offset is the fraction of the viewport half-diagonal, Alpha the darkening.
type GradientStop struct {
	Offset float64
	Alpha  float64
}

// Vignette darkens the edges when the background gradient is enabled.
var Vignette = []GradientStop{{0.4, 0}, {0.7, 0.3}, {1, 0.6}}

// GradientAt returns the darkening at fraction t of the half-diagonal,
// interpolating linearly between stops and holding the end values outside
// them. Stops must be sorted by Offset.
func GradientAt(stops []GradientStop, t float64) float64 {
	if len(stops) == 0 {
		return 0
	}
	if t <= stops[0].Offset {
		return stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			return geometry.MapRange(t, a.Offset, b.Offset, a.Alpha, b.Alpha)
		}
	}
	return stops[len(stops)-1].Alpha
}

// BackgroundGrid is a set of axis-aligned grid lines.
type BackgroundGrid struct {
	Kind       Background
	Spacing    float64
	Alpha      float64   // line opacity
	Vertical   []float64 // x positions
	Horizontal []float64 // y positions
}

// BackgroundSpacing returns the grid pitch in pixels, 0 for BackgroundNone.
func BackgroundSpacing(kind Background, s Scale) float64 {
	switch kind {
	case Background10mm:
		return s.MmToPixels(10)
	case BackgroundInches:
		return s.InchPixels()
	case BackgroundHardware:
		return s.MmToPixels(5)
	default:
		return 0
	}
}

func backgroundAlpha(kind Background) float64 {
	switch kind {
	case Background10mm:
		return 0.18
	case BackgroundInches:
		return 0.15
	case BackgroundHardware:
		return 0.04
	default:
		return 0
	}
}

// BackgroundLines returns the grid lines covering the viewport, starting at
// the top-left corner.
func BackgroundLines(kind Background, s Scale, vp Viewport) BackgroundGrid {
	g := BackgroundGrid{Kind: kind}
	spacing := BackgroundSpacing(kind, s)
	if spacing <= 0 || vp.empty() {
		return g
	}
	g.Spacing = spacing
	g.Alpha = backgroundAlpha(kind)
	g.Vertical = span(spacing, vp.Width)
	g.Horizontal = span(spacing, vp.Height)
	return g
}

// span returns 0, step, 2*step, ... up to and including limit.
func span(step, limit float64) []float64 {
	n := int(math.Floor(limit/step)) + 1
	if n == 1 {
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, float64(n-1)*step)
}
