// Package grid generates the measurement geometry drawn over the kiosk
// canvas: ruler ticks, protractor angle lines, background grid lines and the
// hardware reference table.
//
// Every function is pure. Results depend only on the Scale and Viewport
// passed in and are freshly allocated on each call, so callers regenerate
// them on resize instead of caching.
package grid

import "math"

// DefaultMmPerPixel is the physical size of one pixel on the reference
// display, used whenever a Scale is unset or invalid.
const DefaultMmPerPixel = 0.265

const mmPerInch = 25.4

// Scale converts between physical millimetres and screen pixels.
type Scale struct {
	MmPerPixel float64
}

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height float64
}

// Extent is the longest side of the viewport. Rulers run along it.
func (v Viewport) Extent() float64 {
	return math.Max(v.Width, v.Height)
}

func (v Viewport) empty() bool {
	return !(v.Width > 0) || !(v.Height > 0)
}

func (s Scale) mmPerPixel() float64 {
	if !(s.MmPerPixel > 0) || math.IsInf(s.MmPerPixel, 0) {
		return DefaultMmPerPixel
	}
	return s.MmPerPixel
}

// MmToPixels converts millimetres to pixels.
func (s Scale) MmToPixels(mm float64) float64 { return mm / s.mmPerPixel() }

// PixelsToMm converts pixels to millimetres.
func (s Scale) PixelsToMm(px float64) float64 { return px * s.mmPerPixel() }

// InchesToPixels converts inches to pixels.
func (s Scale) InchesToPixels(in float64) float64 { return s.MmToPixels(in * mmPerInch) }

// InchPixels is the size of one inch rounded to whole pixels, so inch ticks
// and the inch background grid land on the same pixel rows.
func (s Scale) InchPixels() float64 { return math.Round(s.InchesToPixels(1)) }

// MmToInches converts millimetres to inches.
func MmToInches(mm float64) float64 { return mm / mmPerInch }
