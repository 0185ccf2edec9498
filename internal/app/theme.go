package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"holomat/pkg/colorutil"
)

// HoloTheme is the dark kiosk theme, accented with the overlay color theme.
type HoloTheme struct {
	Accent colorutil.Theme
}

var _ fyne.Theme = (*HoloTheme)(nil)

// NewHoloTheme returns the kiosk theme for the named color theme.
func NewHoloTheme(name string) *HoloTheme {
	return &HoloTheme{Accent: colorutil.ThemeByName(name)}
}

func (t *HoloTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.Accent.AppIcon
	case theme.ColorNameSelection:
		return colorutil.WithAlpha(t.Accent.AppIcon, 0.5)
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x05, G: 0x08, B: 0x12, A: 0xFF} // Near-black kiosk canvas
	case theme.ColorNameScrollBar:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *HoloTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *HoloTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *HoloTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16 // Readable from arm's length on the mat
	case theme.SizeNameInlineIcon:
		return 28
	default:
		return theme.DefaultTheme().Size(name)
	}
}
