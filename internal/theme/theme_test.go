package theme

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"lcars/internal/config"
)

func TestDarkThemeUsesLCARSPalette(t *testing.T) {
	cfg := &config.Config{Theme: config.ThemeConfig{Dark: true}}
	th := NewCustomTheme(cfg)

	assert.Equal(t, lcarsOrange, th.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.Equal(t, lcarsBlack, th.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, lcarsRed, th.Color(theme.ColorNameError, theme.VariantDark))
	assert.Equal(t,
		theme.DarkTheme().Color(theme.ColorNameShadow, theme.VariantDark),
		th.Color(theme.ColorNameShadow, theme.VariantDark))
}

func TestLightThemeFallsBack(t *testing.T) {
	cfg := &config.Config{Theme: config.ThemeConfig{Dark: false}}
	th := NewCustomTheme(cfg)

	assert.Equal(t,
		theme.LightTheme().Color(theme.ColorNamePrimary, theme.VariantLight),
		th.Color(theme.ColorNamePrimary, theme.VariantLight))
}

func TestFontSize(t *testing.T) {
	cfg := &config.Config{Theme: config.ThemeConfig{Dark: true, FontSize: 18}}
	th := NewCustomTheme(cfg)
	assert.Equal(t, float32(18), th.Size(theme.SizeNameText))

	cfg.Theme.FontSize = 0
	assert.Equal(t, theme.DarkTheme().Size(theme.SizeNameText), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DarkTheme().Size(theme.SizeNamePadding), th.Size(theme.SizeNamePadding))
}
