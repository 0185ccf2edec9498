package carousel

import (
	"math"

	"holomat/pkg/geometry"
)

// Visual constants for the 3D illusion.
const (
	// ZIndexFocused is the stacking order of the focused item; every other
	// item stays within [zIndexFar, zIndexNear].
	ZIndexFocused = 100
	zIndexFar     = 10
	zIndexNear    = 50

	focusedScale      = 1.4
	windowedFarScale  = 0.7
	windowedNearScale = 1.1
	allNearScale      = 1.2
	farOpacity        = 0.4
	hiddenScale       = 0.4
	hiddenOpacity     = 0.15
	blurDivisor       = 100
	neighborReach     = 2
)

// ItemTransform is the per-render placement of one item. X and Y are offsets
// from the carousel center in pixels; DepthZ is positive toward the viewer.
type ItemTransform struct {
	Index   int
	X, Y    float64
	DepthZ  float64
	Scale   float64
	Opacity float64
	ZIndex  int
	Blur    float64

	Visible     bool // inside the visibility window (always true in show-all mode)
	Focused     bool
	Interactive bool // may receive pointer input
}

// Place computes the transform of index for a carousel of n items.
func Place(index int, rotation float64, active int, visible VisibleSet, n int, windowed bool, cfg Config) ItemTransform {
	if n <= 0 || index < 0 || index >= n {
		return ItemTransform{Index: index}
	}
	segment := SegmentAngle(n)
	factor := cfg.radiusFactor(n)
	hRadius := cfg.BaseHorizontalRadius * factor
	dRadius := cfg.BaseDepthRadius * factor

	focused := index == active
	isVisible := !windowed || visible.Contains(index)

	angle := float64(index)*segment + rotation
	if !focused && isVisible {
		angle += neighborDisplacement(index, active, n, cfg.NeighborSpread) * segment
	}
	rad := geometry.DegToRad(angle)
	x := math.Sin(rad) * hRadius
	z := math.Cos(rad) * dRadius

	var scale, opacity float64
	switch {
	case !windowed:
		near := allNearScale
		if focused {
			near = focusedScale
		}
		scale = geometry.MapRange(z, -dRadius, dRadius, windowedFarScale, near)
		opacity = geometry.MapRange(z, -dRadius, dRadius, farOpacity, 1)
	case isVisible:
		if focused {
			scale = focusedScale
		} else {
			scale = geometry.MapRange(z, -dRadius, dRadius, windowedFarScale, windowedNearScale)
		}
		opacity = geometry.MapRange(z, -dRadius, dRadius, farOpacity, 1)
	default:
		scale = hiddenScale
		opacity = hiddenOpacity
	}

	zIndex := int(math.Round(geometry.MapRange(z, -dRadius, dRadius, zIndexFar, zIndexNear)))
	if focused {
		scale *= cfg.FocusBoost
		opacity = 1
		zIndex = ZIndexFocused
	}

	var blur float64
	if z < 0 {
		blur = math.Abs(z) / blurDivisor
	}

	return ItemTransform{
		Index:       index,
		X:           x,
		DepthZ:      z,
		Scale:       scale,
		Opacity:     opacity,
		ZIndex:      zIndex,
		Blur:        blur,
		Visible:     isVisible,
		Focused:     focused,
		Interactive: isVisible && z > 0,
	}
}

// neighborDisplacement returns how many segments index is pushed away from
// active. Only the two nearest neighbors on each side move.
func neighborDisplacement(index, active, n int, spread float64) float64 {
	cw, ccw := CircularDistance(active, index, n)
	dist := min(cw, ccw)
	if dist == 0 || dist > neighborReach {
		return 0
	}
	direction := -1.0
	if cw < ccw {
		direction = 1
	}
	return direction * spread * float64(neighborReach+1-dist)
}
