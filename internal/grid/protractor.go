package grid

import (
	"fmt"
	"math"

	"holomat/pkg/geometry"
)

// ToolbarReserve is the strip at the bottom of the viewport kept clear for
// the app tray; the protractor pivot sits on its top edge.
const ToolbarReserve = 120

// ProtractorAngles are the rays drawn by the protractor, in degrees
// counter-clockwise from the positive x axis.
var ProtractorAngles = []float64{0, 30, 60, 90, 120, 150, 180}

// DashPattern is the on/off run length in pixels of dashed angle lines.
var DashPattern = [2]float64{5, 5}

// AngleLine is one protractor ray.
type AngleLine struct {
	Angle  float64
	Start  geometry.Point2D
	End    geometry.Point2D
	Label  string
	Width  float64
	Dashed bool
}

// Protractor is the full protractor overlay: rays from a common pivot plus
// the radius of the arc drawn through them.
type Protractor struct {
	Pivot      geometry.Point2D
	LineRadius float64
	ArcRadius  float64
	Lines      []AngleLine
}

// NewProtractor lays out the protractor for the viewport. The pivot is
// snapped to the 10 mm background grid line closest to the horizontal
// center so the rays line up with the grid.
func NewProtractor(s Scale, vp Viewport) Protractor {
	if vp.empty() {
		return Protractor{}
	}
	pivot := geometry.NewPoint2D(PivotX(s, vp), vp.Height-ToolbarReserve)
	p := Protractor{
		Pivot:      pivot,
		LineRadius: math.Min(vp.Width*0.6, vp.Height*0.5),
		ArcRadius:  math.Min(vp.Width*0.4, vp.Height*0.35),
	}
	p.Lines = make([]AngleLine, 0, len(ProtractorAngles))
	for _, angle := range ProtractorAngles {
		width, dashed := angleStyle(angle)
		p.Lines = append(p.Lines, AngleLine{
			Angle:  angle,
			Start:  pivot,
			End:    pivot.Polar(angle, p.LineRadius),
			Label:  fmt.Sprintf("%g°", angle),
			Width:  width,
			Dashed: dashed,
		})
	}
	return p
}

// AngleLines returns just the protractor rays.
func AngleLines(s Scale, vp Viewport) []AngleLine {
	return NewProtractor(s, vp).Lines
}

// PivotX returns the x of the vertical 10 mm grid line nearest the
// horizontal center. Grid lines start at x = 0; on a tie the left line wins.
func PivotX(s Scale, vp Viewport) float64 {
	if vp.empty() {
		return 0
	}
	spacing := s.MmToPixels(10)
	center := vp.Width / 2

	best, bestDist := 0.0, center
	for i := 1; float64(i)*spacing < vp.Width; i++ {
		x := float64(i) * spacing
		if d := math.Abs(center - x); d < bestDist {
			best, bestDist = x, d
		}
	}
	return best
}

// angleStyle returns the stroke width and dashing of a ray: right angles are
// thick, other multiples of 30 thin and solid, anything else thin and dashed.
func angleStyle(angle float64) (width float64, dashed bool) {
	switch {
	case math.Mod(angle, 90) == 0:
		return 2, false
	case math.Mod(angle, 30) == 0:
		return 1, false
	default:
		return 1, true
	}
}
