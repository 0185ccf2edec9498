// Package colorutil provides the overlay color themes and shared color
// helpers for the kiosk.
package colorutil

import (
	"image/color"
	"math"
	"slices"
)

// Common colors used throughout the application.
var (
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Transparent = color.RGBA{}
	// GridBlue is the background grid color; it does not follow the theme.
	GridBlue = color.RGBA{R: 59, G: 130, B: 246, A: 255}
)

// Theme is a named color scheme for overlays and app icons.
type Theme struct {
	Name        string
	Title       string
	Description string
	Overlay     color.RGBA
	AppIcon     color.RGBA
}

// DefaultTheme is used for unknown theme names.
const DefaultTheme = "cyber"

var themes = map[string]Theme{
	"cyber": {
		Name: "cyber", Title: "Cyber Blue", Description: "Classic futuristic blue overlays",
		Overlay: GridBlue, AppIcon: GridBlue,
	},
	"night": {
		Name: "night", Title: "Midnight Purple", Description: "Deep space purple vibes",
		Overlay: rgb(147, 51, 234), AppIcon: rgb(147, 51, 234),
	},
	"sunset": {
		Name: "sunset", Title: "Solar Flare", Description: "Warm orange energy",
		Overlay: rgb(249, 115, 22), AppIcon: rgb(249, 115, 22),
	},
	"matrix": {
		Name: "matrix", Title: "Digital Rain", Description: "Hacker green matrix style",
		Overlay: rgb(34, 197, 94), AppIcon: rgb(34, 197, 94),
	},
	"arctic": {
		Name: "arctic", Title: "Ice Crystal", Description: "Cool cyan frost",
		Overlay: rgb(6, 182, 212), AppIcon: rgb(6, 182, 212),
	},
}

// ThemeByName returns the named theme, falling back to DefaultTheme.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames returns the available theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
