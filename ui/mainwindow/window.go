// Package mainwindow provides the kiosk window: the overlay canvas, the app
// carousel on top of it and a settings toolbar.
package mainwindow

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"holomat/internal/app"
	"holomat/internal/carousel"
	"holomat/internal/config"
	"holomat/internal/grid"
	"holomat/internal/logging"
	"holomat/internal/registry"
	"holomat/internal/version"
	"holomat/pkg/colorutil"
	"holomat/ui/canvas"
	"holomat/ui/carouselview"
	"holomat/ui/prefs"
)

const catalogDebounce = 250 * time.Millisecond

// MainWindow is the kiosk window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	overlay  *canvas.OverlayCanvas
	carousel *carouselview.CarouselView
	status   *widget.Label
	watcher  *app.CatalogWatcher

	// Toolbar controls that follow overlay changes
	scaleEntry   *widget.Entry
	toolSelect   *widget.Select
	bgSelect     *widget.Select
	themeSelect  *widget.Select
	gradient     *widget.Check
	showAll      *widget.Check
	layoutToggle *widget.Check

	mu   sync.Mutex
	apps []registry.App // apps behind the carousel items, same order
}

// New creates the kiosk window. Saved preferences override the config file;
// command-line flags override both.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("HoloMat")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	flags := state.Config.Overrides()
	state.UpdateOverlay(func(o *app.OverlaySettings) {
		p.ApplyOverlay(o)
		o.ApplyFlags(flags)
	})
	fyneApp.Settings().SetTheme(app.NewHoloTheme(state.Overlay().Theme))

	mw.setupUI()
	mw.setupEventHandlers()
	mw.setupWatcher()

	cfg := state.Config
	mw.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	mw.SetFullScreen(cfg.Window.Fullscreen)
	mw.SetOnClosed(mw.onClosed)
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	overlay := mw.state.Overlay()
	cfg := mw.state.Config

	carouselCfg := cfg.CarouselConfig()
	if mw.prefs.Has(prefs.KeyShowAllApps) && !cfg.Overrides().ShowAll {
		carouselCfg.Windowed = !mw.prefs.Bool(prefs.KeyShowAllApps, false)
	}

	mw.overlay = canvas.NewOverlayCanvas(overlay)
	mw.carousel = carouselview.New(nil, carouselCfg, cfg.Carousel.Layout, overlay.ColorTheme().AppIcon)
	mw.carousel.OnActiveIndexChanged(mw.onActiveIndexChanged)
	mw.carousel.OnItemActivated(func(item carousel.Item) {
		mw.updateStatus("Launched " + item.DisplayName)
	})

	mw.status = widget.NewLabel("Ready")
	toolbar := mw.createToolbar(overlay, carouselCfg.Windowed, cfg.Carousel.Layout)

	content := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		container.NewStack(mw.overlay, mw.carousel), // center
	)
	mw.SetContent(content)
	mw.Canvas().Focus(mw.carousel)
}

// createToolbar creates the overlay and carousel controls.
func (mw *MainWindow) createToolbar(overlay app.OverlaySettings, windowed bool, layout config.Layout) fyne.CanvasObject {
	mw.scaleEntry = widget.NewEntry()
	mw.scaleEntry.SetText(formatScale(overlay.MmPerPixel))
	mw.scaleEntry.OnSubmitted = mw.setScale

	mw.toolSelect = widget.NewSelect(names(grid.Tools), func(s string) {
		mw.state.UpdateOverlay(func(o *app.OverlaySettings) { o.Tool = grid.Tool(s) })
	})
	mw.toolSelect.SetSelected(string(overlay.Tool))

	mw.bgSelect = widget.NewSelect(names(grid.Backgrounds), func(s string) {
		mw.state.UpdateOverlay(func(o *app.OverlaySettings) { o.Background = grid.Background(s) })
	})
	mw.bgSelect.SetSelected(string(overlay.Background))

	mw.themeSelect = widget.NewSelect(colorutil.ThemeNames(), func(s string) {
		mw.state.UpdateOverlay(func(o *app.OverlaySettings) { o.Theme = s })
	})
	mw.themeSelect.SetSelected(overlay.ColorTheme().Name)

	mw.gradient = widget.NewCheck("Vignette", func(on bool) {
		mw.state.UpdateOverlay(func(o *app.OverlaySettings) { o.Gradient = on })
	})
	mw.gradient.SetChecked(overlay.Gradient)

	// Initial state is set before the handlers so startup does not write
	// preferences back.
	mw.showAll = widget.NewCheck("Show all", nil)
	mw.showAll.SetChecked(!windowed)
	mw.showAll.OnChanged = func(on bool) {
		mw.carousel.SetWindowed(!on)
		mw.prefs.SetBool(prefs.KeyShowAllApps, on)
		mw.savePrefs()
	}

	mw.layoutToggle = widget.NewCheck("Tray", nil)
	mw.layoutToggle.SetChecked(layout == config.LayoutTray)
	mw.layoutToggle.OnChanged = func(on bool) {
		if on {
			mw.carousel.SetLayout(config.LayoutTray)
		} else {
			mw.carousel.SetLayout(config.LayoutCarousel)
		}
	}

	return container.NewHBox(
		widget.NewLabel("mm/px:"), mw.scaleEntry,
		widget.NewLabel("Tool:"), mw.toolSelect,
		widget.NewLabel("Grid:"), mw.bgSelect,
		widget.NewLabel("Theme:"), mw.themeSelect,
		mw.gradient,
		widget.NewSeparator(),
		mw.showAll,
		mw.layoutToggle,
		widget.NewSeparator(),
		mw.status,
		widget.NewLabel(version.Version),
	)
}

// setScale applies a calibration typed into the scale entry. Values that are
// not positive numbers are rejected and the entry is reset.
func (mw *MainWindow) setScale(text string) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		mw.scaleEntry.SetText(formatScale(mw.state.Overlay().MmPerPixel))
		mw.updateStatus(fmt.Sprintf("Invalid scale %q", text))
		return
	}
	mw.state.UpdateOverlay(func(o *app.OverlaySettings) { o.MmPerPixel = v })
	mw.updateStatus(scaleReadout(v, float64(mw.overlay.Size().Width)))
}

func formatScale(mmPerPixel float64) string {
	return strconv.FormatFloat(mmPerPixel, 'g', -1, 64)
}

// scaleReadout describes how wide widthPx pixels are on the mat.
func scaleReadout(mmPerPixel, widthPx float64) string {
	mm := grid.Scale{MmPerPixel: mmPerPixel}.PixelsToMm(widthPx)
	return fmt.Sprintf("%s mm/px: %.0f px = %.1f mm (%.2f in)", formatScale(mmPerPixel), widthPx, mm, grid.MmToInches(mm))
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventCatalogLoaded, func(data interface{}) {
		cat, ok := data.(*registry.Catalog)
		if !ok {
			return
		}
		apps := cat.Enabled()
		mw.mu.Lock()
		mw.apps = apps
		mw.mu.Unlock()
		mw.carousel.SetItems(cat.Items(mw.state.Launch))
		mw.updateStatus(fmt.Sprintf("%d apps", len(apps)))
	})

	mw.state.On(app.EventCatalogError, func(data interface{}) {
		if err, ok := data.(error); ok {
			mw.updateStatus("Catalog error: " + err.Error())
		}
	})

	mw.state.On(app.EventOverlayChanged, func(data interface{}) {
		o, ok := data.(app.OverlaySettings)
		if !ok {
			return
		}
		mw.overlay.SetSettings(o)
		mw.carousel.SetAccent(o.ColorTheme().AppIcon)
		mw.app.Settings().SetTheme(app.NewHoloTheme(o.Theme))
		mw.prefs.StoreOverlay(o)
		mw.savePrefs()
	})

	mw.state.On(app.EventActiveAppChanged, func(data interface{}) {
		if a, ok := data.(registry.App); ok {
			mw.updateStatus(a.Name)
		}
	})
}

// setupWatcher reloads the catalog whenever its file changes.
func (mw *MainWindow) setupWatcher() {
	path := mw.state.Config.Apps
	w, err := app.NewCatalogWatcher(path, catalogDebounce)
	if err != nil {
		logging.Logger().Warn("Catalog: live reload disabled", "err", err)
		return
	}
	w.OnChange(func(path string) {
		if err := mw.state.LoadCatalog(path); err == nil {
			logging.Logger().Info("Catalog: reloaded", "path", path)
		}
	})
	w.Start()
	mw.watcher = w
}

func (mw *MainWindow) onActiveIndexChanged(index int) {
	mw.mu.Lock()
	var a registry.App
	ok := index >= 0 && index < len(mw.apps)
	if ok {
		a = mw.apps[index]
	}
	mw.mu.Unlock()
	if ok {
		mw.state.SetActiveApp(a)
	}
}

func (mw *MainWindow) onClosed() {
	if mw.watcher != nil {
		mw.watcher.Stop()
	}
	mw.savePrefs()
}

func (mw *MainWindow) savePrefs() {
	if err := mw.prefs.Save(); err != nil {
		logging.Logger().Warn("Prefs: save failed", "err", err)
	}
}

// updateStatus updates the status text.
func (mw *MainWindow) updateStatus(text string) {
	mw.status.SetText(text)
}

// Carousel returns the carousel widget.
func (mw *MainWindow) Carousel() *carouselview.CarouselView {
	return mw.carousel
}

// Overlay returns the overlay canvas.
func (mw *MainWindow) Overlay() *canvas.OverlayCanvas {
	return mw.overlay
}
