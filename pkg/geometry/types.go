// Package geometry provides basic geometric types used throughout the kiosk.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Polar returns the point at distance r from p along angleDeg, measured
// counter-clockwise from +X with screen Y pointing down.
func (p Point2D) Polar(angleDeg, r float64) Point2D {
	rad := DegToRad(angleDeg)
	return Point2D{X: p.X + math.Cos(rad)*r, Y: p.Y - math.Sin(rad)*r}
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// ArcPoints samples n+1 points along a circular arc from startDeg to endDeg
// (inclusive), with the same orientation as Polar.
func ArcPoints(center Point2D, radius, startDeg, endDeg float64, n int) []Point2D {
	if n < 1 {
		n = 1
	}
	points := make([]Point2D, n+1)
	step := (endDeg - startDeg) / float64(n)
	for i := 0; i <= n; i++ {
		points[i] = center.Polar(startDeg+float64(i)*step, radius)
	}
	return points
}
