package grid

import "holomat/pkg/geometry"

// Hole is a metric screw size with its clearance and tap drill diameters in
// millimetres.
type Hole struct {
	Name      string
	Diameter  float64
	Clearance float64
	Tap       float64
}

// Length is a reference length in millimetres.
type Length struct {
	Label string
	Mm    float64
}

// Holes is the metric screw table, smallest first.
var Holes = []Hole{
	{"M2", 2.0, 2.2, 1.6},
	{"M3", 3.0, 3.2, 2.5},
	{"M4", 4.0, 4.2, 3.3},
	{"M5", 5.0, 5.2, 4.2},
	{"M6", 6.0, 6.2, 5.0},
	{"M8", 8.0, 8.2, 6.8},
}

// Lengths is the reference length table.
var Lengths = []Length{
	{"5mm", 5}, {"10mm", 10}, {"15mm", 15}, {"20mm", 20},
	{"25mm", 25}, {"30mm", 30}, {"40mm", 40}, {"50mm", 50},
}

// Marker sizes in pixels.
const (
	HoleMarkerMin = 8
	HoleMarkerMax = 16
	LengthBarMax  = 40
)

// HoleMarker is a Hole with its on-screen marker diameter.
type HoleMarker struct {
	Hole
	Size float64
}

// LengthBar is a Length with its on-screen bar width.
type LengthBar struct {
	Length
	Width float64
}

// Reference is the hardware reference overlay content.
type Reference struct {
	Holes   []HoleMarker
	Lengths []LengthBar
}

// HardwareReference sizes the hole and length tables for the display.
// Markers are kept legible rather than true to scale.
func HardwareReference(s Scale) Reference {
	ref := Reference{
		Holes:   make([]HoleMarker, len(Holes)),
		Lengths: make([]LengthBar, len(Lengths)),
	}
	for i, h := range Holes {
		ref.Holes[i] = HoleMarker{Hole: h, Size: geometry.Clamp(s.MmToPixels(h.Diameter), HoleMarkerMin, HoleMarkerMax)}
	}
	for i, l := range Lengths {
		ref.Lengths[i] = LengthBar{Length: l, Width: min(s.MmToPixels(l.Mm), LengthBarMax)}
	}
	return ref
}
