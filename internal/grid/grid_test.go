package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

var (
	kiosk  = Viewport{Width: 1920, Height: 1080}
	refPx  = Scale{MmPerPixel: DefaultMmPerPixel}
	unitPx = Scale{MmPerPixel: 1}
)

func TestScaleFallback(t *testing.T) {
	for _, s := range []Scale{{}, {MmPerPixel: -1}, {MmPerPixel: math.NaN()}, {MmPerPixel: math.Inf(1)}} {
		assert.Equal(t, refPx.MmToPixels(10), s.MmToPixels(10))
	}
}

func TestConversions(t *testing.T) {
	assert.Equal(t, 10.0, unitPx.MmToPixels(10))
	assert.Equal(t, 25.4, unitPx.InchesToPixels(1))
	assert.Equal(t, 25.0, unitPx.InchPixels())
	assert.Equal(t, 96.0, refPx.InchPixels())
	assert.InDelta(t, 2.65, refPx.PixelsToMm(10), 1e-12)
	assert.Equal(t, 1.0, MmToInches(25.4))
}

func TestInchTicks(t *testing.T) {
	marks := InchTicks(unitPx, Viewport{Width: 100, Height: 60})
	// extent 100 px at 25 px/inch: inches 0..4, seven marks between each pair.
	require.Len(t, marks, 5+4*7)

	var inches []TickMark
	for _, m := range marks {
		switch m.Kind {
		case TickInch:
			inches = append(inches, m)
		default:
			assert.Empty(t, m.Label)
		}
	}
	require.Len(t, inches, 5)
	assert.Equal(t, `0"`, inches[0].Label)
	assert.Equal(t, `4"`, inches[4].Label)
	assert.Equal(t, 100.0, inches[4].Position)

	assert.Equal(t, TickMark{Position: 0, Kind: TickInch, Length: 40, Label: `0"`}, marks[0])
	assert.Equal(t, TickMark{Position: 12.5, Kind: TickHalf, Length: 25}, marks[1])
	assert.Equal(t, TickMark{Position: 6.25, Kind: TickQuarter, Length: 15}, marks[2])
	assert.Equal(t, TickMark{Position: 18.75, Kind: TickQuarter, Length: 15}, marks[3])
	assert.Equal(t, TickMark{Position: 3.125, Kind: TickEighth, Length: 10}, marks[4])
}

func TestInchTickLengthsShrinkWithSubdivision(t *testing.T) {
	lengths := map[TickKind]float64{}
	for _, m := range InchTicks(refPx, kiosk) {
		lengths[m.Kind] = m.Length
	}
	assert.Greater(t, lengths[TickInch], lengths[TickHalf])
	assert.Greater(t, lengths[TickHalf], lengths[TickQuarter])
	assert.Greater(t, lengths[TickQuarter], lengths[TickEighth])
}

func TestMmTicks(t *testing.T) {
	marks := MmTicks(unitPx, Viewport{Width: 120, Height: 95})
	require.Len(t, marks, 13)
	assert.Equal(t, TickMark{Position: 0, Kind: TickMajor, Length: 32, Label: "0"}, marks[0])
	assert.Equal(t, TickMark{Position: 10, Kind: TickMinor, Length: 16}, marks[1])
	assert.Equal(t, TickMark{Position: 50, Kind: TickMajor, Length: 32, Label: "50"}, marks[5])
	assert.Equal(t, "100", marks[10].Label)
	assert.Equal(t, 120.0, marks[12].Position)
}

func TestGeometryIsIdempotent(t *testing.T) {
	assert.Equal(t, InchTicks(refPx, kiosk), InchTicks(refPx, kiosk))
	assert.Equal(t, MmTicks(refPx, kiosk), MmTicks(refPx, kiosk))
	assert.Equal(t, NewProtractor(refPx, kiosk), NewProtractor(refPx, kiosk))
	assert.Equal(t, BackgroundLines(BackgroundInches, refPx, kiosk), BackgroundLines(BackgroundInches, refPx, kiosk))

	a := InchTicks(refPx, kiosk)
	a[0].Label = "changed"
	assert.Equal(t, `0"`, InchTicks(refPx, kiosk)[0].Label, "results must not share storage")
}

func TestEmptyViewport(t *testing.T) {
	assert.Empty(t, InchTicks(refPx, Viewport{}))
	assert.Empty(t, MmTicks(refPx, Viewport{Width: 100}))
	assert.Empty(t, AngleLines(refPx, Viewport{Height: 100}))
	assert.Empty(t, BackgroundLines(Background10mm, refPx, Viewport{}).Vertical)
}

func TestPivotSnapsToGridLine(t *testing.T) {
	// 10 mm lines every 10 px; center 105 is equidistant from 100 and 110.
	assert.Equal(t, 100.0, PivotX(unitPx, Viewport{Width: 210, Height: 400}))
	assert.Equal(t, 110.0, PivotX(unitPx, Viewport{Width: 216, Height: 400}))

	x := PivotX(refPx, kiosk)
	spacing := refPx.MmToPixels(10)
	k := math.Round(x / spacing)
	assert.True(t, scalar.EqualWithinAbs(x, k*spacing, 1e-9))
	assert.LessOrEqual(t, math.Abs(x-kiosk.Width/2), spacing/2+1e-9)
}

func TestProtractorLayout(t *testing.T) {
	p := NewProtractor(unitPx, Viewport{Width: 1000, Height: 800})
	assert.Equal(t, 500.0, p.Pivot.X)
	assert.Equal(t, 680.0, p.Pivot.Y)
	assert.Equal(t, 400.0, p.LineRadius)
	assert.Equal(t, 280.0, p.ArcRadius)

	require.Len(t, p.Lines, len(ProtractorAngles))
	for i, line := range p.Lines {
		assert.Equal(t, ProtractorAngles[i], line.Angle)
		assert.Equal(t, p.Pivot, line.Start)
		assert.InDelta(t, p.LineRadius, line.Start.Distance(line.End), 1e-9)
		assert.False(t, line.Dashed)
	}

	right, up, left := p.Lines[0], p.Lines[3], p.Lines[6]
	assert.InDelta(t, 900, right.End.X, 1e-9)
	assert.InDelta(t, 680, right.End.Y, 1e-9)
	assert.InDelta(t, 500, up.End.X, 1e-9)
	assert.InDelta(t, 280, up.End.Y, 1e-9)
	assert.InDelta(t, 100, left.End.X, 1e-9)

	assert.Equal(t, 2.0, right.Width)
	assert.Equal(t, 2.0, up.Width)
	assert.Equal(t, 1.0, p.Lines[1].Width)
	assert.Equal(t, "30°", p.Lines[1].Label)
}

func TestAngleStyle(t *testing.T) {
	w, dashed := angleStyle(45)
	assert.Equal(t, 1.0, w)
	assert.True(t, dashed)
	w, dashed = angleStyle(270)
	assert.Equal(t, 2.0, w)
	assert.False(t, dashed)
}

func TestBackgroundLines(t *testing.T) {
	g := BackgroundLines(Background10mm, unitPx, Viewport{Width: 35, Height: 20})
	assert.Equal(t, 10.0, g.Spacing)
	assert.Equal(t, 0.18, g.Alpha)
	assert.Equal(t, []float64{0, 10, 20, 30}, g.Vertical)
	assert.Equal(t, []float64{0, 10, 20}, g.Horizontal)

	assert.Equal(t, 5.0, BackgroundSpacing(BackgroundHardware, unitPx))
	assert.Equal(t, 25.0, BackgroundSpacing(BackgroundInches, unitPx))
	assert.Zero(t, BackgroundSpacing(BackgroundNone, unitPx))
	assert.Empty(t, BackgroundLines(BackgroundNone, unitPx, kiosk).Vertical)

	tiny := BackgroundLines(Background10mm, unitPx, Viewport{Width: 5, Height: 5})
	assert.Equal(t, []float64{0}, tiny.Vertical)
}

func TestGradientAt(t *testing.T) {
	assert.Zero(t, GradientAt(Vignette, 0))
	assert.Zero(t, GradientAt(Vignette, 0.4))
	assert.InDelta(t, 0.15, GradientAt(Vignette, 0.55), 1e-9)
	assert.InDelta(t, 0.3, GradientAt(Vignette, 0.7), 1e-9)
	assert.InDelta(t, 0.45, GradientAt(Vignette, 0.85), 1e-9)
	assert.Equal(t, 0.6, GradientAt(Vignette, 1.4))
	assert.Zero(t, GradientAt(nil, 0.5))
}

func TestParseNames(t *testing.T) {
	b, err := ParseBackground("inches")
	require.NoError(t, err)
	assert.Equal(t, BackgroundInches, b)
	_, err = ParseBackground("dots")
	assert.Error(t, err)

	tool, err := ParseTool("ruler-mm")
	require.NoError(t, err)
	assert.Equal(t, ToolRulerMm, tool)
	_, err = ParseTool("compass")
	assert.Error(t, err)
}

func TestHardwareReference(t *testing.T) {
	ref := HardwareReference(Scale{MmPerPixel: 0.5})
	require.Len(t, ref.Holes, 6)
	require.Len(t, ref.Lengths, 8)

	assert.Equal(t, "M2", ref.Holes[0].Name)
	assert.Equal(t, 8.0, ref.Holes[0].Size, "4 px is raised to the minimum")
	assert.Equal(t, 10.0, ref.Holes[3].Size)
	assert.Equal(t, 16.0, ref.Holes[5].Size, "16.0 px stays at the maximum")
	assert.Equal(t, 6.8, ref.Holes[5].Tap)

	assert.Equal(t, 10.0, ref.Lengths[0].Width)
	assert.Equal(t, 40.0, ref.Lengths[3].Width)
	assert.Equal(t, 40.0, ref.Lengths[7].Width)
	assert.Equal(t, "50mm", ref.Lengths[7].Label)
}

func TestTickKindString(t *testing.T) {
	assert.Equal(t, "eighth", TickEighth.String())
	assert.Equal(t, "unknown", TickKind(42).String())
}
