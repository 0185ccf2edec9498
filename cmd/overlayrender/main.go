// Command overlayrender draws a measurement overlay headlessly and writes it
// as PNG or WebP, for checking a display calibration without the kiosk.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"holomat/internal/app"
	"holomat/internal/grid"
	"holomat/ui/canvas"
)

func main() {
	width := flag.Int("width", 1280, "Image width in pixels")
	height := flag.Int("height", 800, "Image height in pixels")
	tool := flag.String("tool", string(grid.ToolRulerMm), "Overlay tool")
	background := flag.String("background", string(grid.Background10mm), "Background grid")
	theme := flag.String("theme", "cyber", "Color theme")
	mmPerPixel := flag.Float64("mm-per-pixel", grid.DefaultMmPerPixel, "Display scale in millimetres per pixel")
	gradient := flag.Bool("gradient", false, "Darken the edges with the vignette")
	format := flag.String("format", "", "Output format: png or webp (default from -out extension)")
	out := flag.String("out", "", "Output file")
	flag.Parse()

	if *out == "" {
		fmt.Println("Usage: overlayrender -out <file> [-tool ruler-mm] [-background 10mm] [-width 1280 -height 800]")
		os.Exit(1)
	}

	t, err := grid.ParseTool(*tool)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	bg, err := grid.ParseBackground(*background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *format == "" {
		*format = formatFromPath(*out)
	}

	settings := app.OverlaySettings{
		Tool:       t,
		Background: bg,
		Theme:      *theme,
		MmPerPixel: *mmPerPixel,
		Gradient:   *gradient,
	}
	scene := canvas.BuildScene(settings, grid.Viewport{Width: float64(*width), Height: float64(*height)})
	img := canvas.RenderImage(scene)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	if err := encode(f, img, *format); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Failed to encode %s: %v\n", *format, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d, %s on %s, %.4f mm/px)\n", *out, *width, *height, t, bg, *mmPerPixel)
	fmt.Printf("Ruler ticks: %d, grid lines: %d\n", len(scene.Ticks), len(scene.Grid.Vertical)+len(scene.Grid.Horizontal))
}

func formatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return "webp"
	}
	return "png"
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "webp":
		return nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
