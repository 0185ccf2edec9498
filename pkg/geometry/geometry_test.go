package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{360, 0},
		{-45, 315},
		{725, 5},
		{-720, 0},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeDegrees(%v)", tt.in)
		assert.True(t, got >= 0 && got < 360, "NormalizeDegrees(%v) = %v out of range", tt.in, got)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(0.5, 1, 1.3))
	assert.Equal(t, 1.3, Clamp(2, 1, 1.3))
	assert.Equal(t, 1.2, Clamp(1.2, 1, 1.3))
}

func TestMapRange(t *testing.T) {
	assert.Equal(t, 0.7, MapRange(-100, -100, 100, 0.7, 1.1))
	assert.InDelta(t, 1.1, MapRange(100, -100, 100, 0.7, 1.1), 1e-12)
	assert.InDelta(t, 0.9, MapRange(0, -100, 100, 0.7, 1.1), 1e-12)
	assert.Equal(t, 5.0, MapRange(3, 1, 1, 5, 10), "degenerate range")
}

func TestPolar(t *testing.T) {
	c := NewPoint2D(100, 100)

	right := c.Polar(0, 50)
	assert.True(t, scalar.EqualWithinAbs(right.X, 150, 1e-9))
	assert.True(t, scalar.EqualWithinAbs(right.Y, 100, 1e-9))

	up := c.Polar(90, 50)
	assert.True(t, scalar.EqualWithinAbs(up.X, 100, 1e-9))
	assert.True(t, scalar.EqualWithinAbs(up.Y, 50, 1e-9), "90 degrees points up on screen")
}

func TestArcPoints(t *testing.T) {
	pts := ArcPoints(Point2D{}, 10, 180, 0, 4)
	assert.Len(t, pts, 5)
	assert.InDelta(t, -10, pts[0].X, 1e-9)
	assert.InDelta(t, 10, pts[4].X, 1e-9)
	for _, p := range pts {
		assert.InDelta(t, 10, math.Hypot(p.X, p.Y), 1e-9)
	}
}
