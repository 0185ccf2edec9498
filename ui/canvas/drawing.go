package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"holomat/internal/grid"
	"holomat/pkg/colorutil"
	"holomat/pkg/geometry"
)

const (
	tickWidth      = 2
	gridLineWidth  = 1
	rulerBand      = 56 // depth of the shaded strip under the ruler
	labelGap       = 4
	arcSegments    = 96
	circleSegments = 48
	pivotRadius    = 4
	angleLabelGap  = 16

	panelMargin = 24
	panelRow    = 28
	panelWidth  = 236
)

var labelFace = basicfont.Face7x13

// degreeGlyph is a 3x3 ring drawn after angle labels; basicfont only covers
// ASCII.
var degreeGlyph = [3]uint8{0b010, 0b101, 0b010}

// pen accumulates filled shapes of one color and paints them in a single
// rasterizer pass. All shapes wind the same way so overlaps never cancel.
type pen struct {
	z    *vector.Rasterizer
	w, h int
	used bool
}

func newPen(w, h int) *pen {
	return &pen{z: vector.NewRasterizer(w, h), w: w, h: h}
}

func (p *pen) polygon(pts ...geometry.Point2D) {
	if len(pts) < 3 {
		return
	}
	p.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.z.ClosePath()
	p.used = true
}

// line adds a stroke of the given width centered on a-b.
func (p *pen) line(a, b geometry.Point2D, width float64) {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return
	}
	n := geometry.NewPoint2D(-d.Y, d.X).Scale(width / 2 / l)
	p.polygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// dashed adds a dashed stroke starting with an "on" run at a.
func (p *pen) dashed(a, b geometry.Point2D, width float64, pattern [2]float64) {
	total := a.Distance(b)
	on, off := pattern[0], pattern[1]
	if total == 0 || on <= 0 {
		return
	}
	dir := b.Sub(a).Scale(1 / total)
	for s := 0.0; s < total; s += on + off {
		e := math.Min(s+on, total)
		p.line(a.Add(dir.Scale(s)), a.Add(dir.Scale(e)), width)
	}
}

func (p *pen) polyline(pts []geometry.Point2D, width float64) {
	for i := 1; i < len(pts); i++ {
		p.line(pts[i-1], pts[i], width)
	}
}

func (p *pen) disc(center geometry.Point2D, r float64) {
	pts := geometry.ArcPoints(center, r, 0, 360, circleSegments)
	p.polygon(pts[:circleSegments]...)
}

func (p *pen) ring(center geometry.Point2D, r, width float64) {
	p.polyline(geometry.ArcPoints(center, r, 0, 360, circleSegments), width)
}

func (p *pen) rect(r geometry.Rect) {
	p.polygon(
		geometry.NewPoint2D(r.X, r.Y),
		geometry.NewPoint2D(r.X, r.Y+r.Height),
		geometry.NewPoint2D(r.X+r.Width, r.Y+r.Height),
		geometry.NewPoint2D(r.X+r.Width, r.Y),
	)
}

// paint fills everything added since the last paint with c.
func (p *pen) paint(dst *image.RGBA, c color.Color) {
	if !p.used {
		return
	}
	p.z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	p.z.Reset(p.w, p.h)
	p.used = false
}

// RenderImage renders scene into a new image the size of its viewport.
func RenderImage(scene Scene) *image.RGBA {
	w := int(math.Round(math.Max(scene.Viewport.Width, 0)))
	h := int(math.Round(math.Max(scene.Viewport.Height, 0)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Render(img, scene)
	return img
}

// Render draws scene onto dst over an opaque black backdrop. dst is expected
// to start at the origin.
func Render(dst *image.RGBA, scene Scene) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(colorutil.Black), image.Point{}, draw.Src)
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	p := newPen(b.Dx(), b.Dy())

	drawGrid(dst, p, scene)
	if scene.Gradient {
		drawVignette(dst, grid.Vignette)
	}

	switch scene.Tool {
	case grid.ToolRulerInches, grid.ToolRulerMm:
		drawRuler(dst, p, scene)
	case grid.ToolProtractor:
		drawProtractor(dst, p, scene)
	case grid.ToolHardware:
		drawHardware(dst, p, scene)
	}
}

func drawGrid(dst *image.RGBA, p *pen, scene Scene) {
	g := scene.Grid
	vp := scene.Viewport
	for _, x := range g.Vertical {
		p.line(geometry.NewPoint2D(x, 0), geometry.NewPoint2D(x, vp.Height), gridLineWidth)
	}
	for _, y := range g.Horizontal {
		p.line(geometry.NewPoint2D(0, y), geometry.NewPoint2D(vp.Width, y), gridLineWidth)
	}
	p.paint(dst, colorutil.WithAlpha(colorutil.GridBlue, g.Alpha))
}

// drawVignette darkens dst radially from its center.
func drawVignette(dst *image.RGBA, stops []grid.GradientStop) {
	b := dst.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	halfDiag := math.Hypot(cx, cy)
	if halfDiag == 0 {
		return
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / halfDiag
			keep := 1 - grid.GradientAt(stops, d)
			if keep >= 1 {
				continue
			}
			i := dst.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				dst.Pix[i+c] = uint8(float64(dst.Pix[i+c]) * keep)
			}
		}
	}
}

// tickSegment returns the stroke of a ruler tick hanging off the top or
// left edge.
func tickSegment(t grid.TickMark, horizontal bool) (from, to geometry.Point2D) {
	if horizontal {
		return geometry.NewPoint2D(t.Position, 0), geometry.NewPoint2D(t.Position, t.Length)
	}
	return geometry.NewPoint2D(0, t.Position), geometry.NewPoint2D(t.Length, t.Position)
}

func drawRuler(dst *image.RGBA, p *pen, scene Scene) {
	c := scene.Theme.Overlay
	vp := scene.Viewport
	horizontal := scene.Horizontal()

	band := geometry.NewRect(0, 0, rulerBand, vp.Height)
	if horizontal {
		band = geometry.NewRect(0, 0, vp.Width, rulerBand)
	}
	p.rect(band)
	p.paint(dst, colorutil.WithAlpha(c, 0.08))

	for _, t := range scene.Ticks {
		from, to := tickSegment(t, horizontal)
		p.line(from, to, tickWidth)
	}
	p.paint(dst, c)

	ascent := labelFace.Metrics().Ascent.Ceil()
	for _, t := range scene.Ticks {
		if t.Label == "" {
			continue
		}
		if horizontal {
			drawText(dst, t.Label, int(t.Position)+labelGap, int(t.Length)+ascent, c)
		} else {
			drawText(dst, t.Label, int(t.Length)+labelGap, int(t.Position)+ascent/2, c)
		}
	}
}

func drawProtractor(dst *image.RGBA, p *pen, scene Scene) {
	pr := scene.Protractor
	c := scene.Theme.Overlay

	for _, l := range pr.Lines {
		if l.Dashed {
			p.dashed(l.Start, l.End, l.Width, grid.DashPattern)
		} else {
			p.line(l.Start, l.End, l.Width)
		}
	}
	p.polyline(geometry.ArcPoints(pr.Pivot, pr.ArcRadius, 0, 180, arcSegments), 1)
	p.disc(pr.Pivot, pivotRadius)
	p.paint(dst, c)

	for _, l := range pr.Lines {
		at := pr.Pivot.Polar(l.Angle, pr.LineRadius+angleLabelGap)
		drawText(dst, l.Label, int(at.X)-textWidth(l.Label)/2, int(at.Y)+labelFace.Metrics().Ascent.Ceil()/2, c)
	}
}

// drawHardware draws the hole and length reference panel in the top-left
// corner.
func drawHardware(dst *image.RGBA, p *pen, scene Scene) {
	ref := scene.Hardware
	c := scene.Theme.Overlay
	rows := len(ref.Holes) + len(ref.Lengths) + 2

	x := float64(panelMargin)
	y := float64(panelMargin)
	p.rect(geometry.NewRect(x-8, y-8, panelWidth, float64(rows*panelRow)+16))
	p.paint(dst, colorutil.WithAlpha(colorutil.Black, 0.6))

	ascent := labelFace.Metrics().Ascent.Ceil()
	type label struct {
		text string
		x, y int
	}
	var labels []label
	row := func(text string, indent float64) {
		labels = append(labels, label{text, int(x + indent), int(y) + panelRow/2 + ascent/2})
		y += panelRow
	}

	row("HOLES", 0)
	for _, h := range ref.Holes {
		p.ring(geometry.NewPoint2D(x+grid.HoleMarkerMax/2, y+panelRow/2), h.Size/2, 1.5)
		row(fmt.Sprintf("%-3s %.1f clr %.1f tap", h.Name, h.Clearance, h.Tap), grid.HoleMarkerMax+12)
	}
	row("LENGTHS", 0)
	for _, l := range ref.Lengths {
		p.rect(geometry.NewRect(x, y+panelRow/2-2, l.Width, 4))
		row(l.Label, grid.LengthBarMax+12)
	}
	p.paint(dst, c)

	for _, l := range labels {
		drawText(dst, l.text, l.x, l.y, c)
	}
}

// drawText draws s with its baseline at y. A trailing degree sign is drawn
// from degreeGlyph.
func drawText(dst *image.RGBA, s string, x, y int, c color.Color) {
	text, degree := strings.CutSuffix(s, "°")
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: labelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	if !degree {
		return
	}

	b := dst.Bounds()
	gx := d.Dot.X.Round() + 1
	gy := y - labelFace.Metrics().Ascent.Ceil() + 1
	for row, bits := range degreeGlyph {
		for col := 0; col < 3; col++ {
			if bits&(1<<(2-col)) == 0 {
				continue
			}
			pt := image.Pt(gx+col, gy+row)
			if pt.In(b) {
				dst.Set(pt.X, pt.Y, c)
			}
		}
	}
}

func textWidth(s string) int {
	text, degree := strings.CutSuffix(s, "°")
	w := font.MeasureString(labelFace, text).Ceil()
	if degree {
		w += 4
	}
	return w
}
