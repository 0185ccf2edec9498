package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeByName(t *testing.T) {
	night := ThemeByName("night")
	assert.Equal(t, "Midnight Purple", night.Title)
	assert.Equal(t, color.RGBA{R: 147, G: 51, B: 234, A: 255}, night.Overlay)

	assert.Equal(t, ThemeByName(DefaultTheme), ThemeByName("neon"))
	assert.Equal(t, GridBlue, ThemeByName("").Overlay)
}

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"arctic", "cyber", "matrix", "night", "sunset"}, ThemeNames())
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 59, G: 130, B: 246, A: 46}, WithAlpha(GridBlue, 0.18))
	assert.Equal(t, uint8(255), WithAlpha(White, 3).A)
	assert.Equal(t, uint8(0), WithAlpha(White, -1).A)
}
