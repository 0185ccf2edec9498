package carousel

import (
	"math"

	"holomat/pkg/geometry"
)

// SegmentAngle is the angular slice allocated to one of n items.
// It is 0 for an empty carousel.
func SegmentAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}

// RotationToIndex maps a rotation to the index of the item facing the viewer.
// Rotation grows in the opposite direction to the index, so a positive drag
// brings lower indices forward.
func RotationToIndex(rotation float64, n int) int {
	if n <= 0 || math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		return 0
	}
	segment := SegmentAngle(n)
	rounded := int(math.Round(geometry.NormalizeDegrees(rotation) / segment))
	return mod(n-rounded, n)
}

// IndexToRotation returns the rotation that brings index to the front,
// expressed in the same turn as current so that animating from current never
// travels more than 180 degrees.
func IndexToRotation(index int, current float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if math.IsNaN(current) || math.IsInf(current, 0) {
		current = 0
	}
	segment := SegmentAngle(n)
	target := float64(mod(n-mod(index, n), n)) * segment

	turns := math.Floor(current / 360)
	normalized := current - turns*360
	if math.Abs(normalized-target) > 180 {
		if target < 180 {
			target += 360
		} else {
			target -= 360
		}
	}
	return turns*360 + target
}

// SnapToNearest rounds current to the closest segment boundary.
func SnapToNearest(current float64, n int) float64 {
	if n <= 0 {
		return current
	}
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return 0
	}
	segment := SegmentAngle(n)
	target := math.Round(current/segment) * segment

	// Near the 0/360 seam prefer whichever representation is closer to the
	// unwrapped current value.
	switch {
	case target > 270 && math.Abs(target-360) < segment:
		if math.Abs(current-target) > math.Abs(current-(target-360)) {
			target -= 360
		}
	case target < 90 && math.Abs(target) < segment:
		if math.Abs(current-target) > math.Abs(current-(target+360)) {
			target += 360
		}
	}
	return target
}

// CircularDistance returns the clockwise (a to b) and counter-clockwise
// index distances on a ring of n items.
func CircularDistance(a, b, n int) (cw, ccw int) {
	if n <= 0 {
		return 0, 0
	}
	return mod(b-a, n), mod(a-b, n)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
