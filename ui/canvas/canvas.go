package canvas

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"holomat/internal/app"
	"holomat/internal/grid"
)

// OverlayCanvas is a full-screen widget that draws the background grid and
// the selected measurement tool. Rendering happens in device pixels so the
// mm-per-pixel calibration holds on HiDPI screens.
type OverlayCanvas struct {
	widget.BaseWidget

	mu       sync.RWMutex
	settings app.OverlaySettings

	raster *fynecanvas.Raster

	// Last rendered output, kept for screenshots and tests.
	lastOutput *image.RGBA
}

// NewOverlayCanvas creates an overlay canvas drawing the given settings.
func NewOverlayCanvas(settings app.OverlaySettings) *OverlayCanvas {
	oc := &OverlayCanvas{settings: settings}

	oc.raster = fynecanvas.NewRaster(oc.draw)
	oc.raster.ScaleMode = fynecanvas.ImageScalePixels

	oc.ExtendBaseWidget(oc)
	return oc
}

// SetSettings replaces the overlay settings and redraws.
func (oc *OverlayCanvas) SetSettings(settings app.OverlaySettings) {
	oc.mu.Lock()
	oc.settings = settings
	oc.mu.Unlock()
	oc.Refresh()
}

// Settings returns the settings currently drawn.
func (oc *OverlayCanvas) Settings() app.OverlaySettings {
	oc.mu.RLock()
	defer oc.mu.RUnlock()
	return oc.settings
}

// GetRenderedOutput returns the last rendered frame, or nil before the first
// draw.
func (oc *OverlayCanvas) GetRenderedOutput() *image.RGBA {
	oc.mu.RLock()
	defer oc.mu.RUnlock()
	return oc.lastOutput
}

// draw is the raster drawing function.
func (oc *OverlayCanvas) draw(w, h int) image.Image {
	scene := BuildScene(oc.Settings(), grid.Viewport{Width: float64(w), Height: float64(h)})
	output := RenderImage(scene)

	oc.mu.Lock()
	oc.lastOutput = output
	oc.mu.Unlock()
	return output
}

// CreateRenderer implements fyne.Widget.
func (oc *OverlayCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &overlayCanvasRenderer{canvas: oc}
}

type overlayCanvasRenderer struct {
	canvas *OverlayCanvas
}

func (r *overlayCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *overlayCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *overlayCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *overlayCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *overlayCanvasRenderer) Destroy() {}
