package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"lcars/internal/config"
)

// LCARS panel colours
var (
	lcarsOrange   = color.NRGBA{R: 0xFF, G: 0x99, B: 0x00, A: 0xFF}
	lcarsPeach    = color.NRGBA{R: 0xFF, G: 0xCC, B: 0x99, A: 0xFF}
	lcarsLavender = color.NRGBA{R: 0xCC, G: 0x99, B: 0xCC, A: 0xFF}
	lcarsBlue     = color.NRGBA{R: 0x99, G: 0x99, B: 0xFF, A: 0xFF}
	lcarsRed      = color.NRGBA{R: 0xCC, G: 0x66, B: 0x66, A: 0xFF}
	lcarsPanel    = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x2E, A: 0xFF}
	lcarsBlack    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// CustomTheme implements fyne.Theme. The dark variant uses the LCARS
// palette; the light variant falls back to Fyne's defaults.
type CustomTheme struct {
	config *config.Config
}

// NewCustomTheme creates a new custom theme with the given configuration
func NewCustomTheme(config *config.Config) *CustomTheme {
	return &CustomTheme{config: config}
}

func (t *CustomTheme) base() fyne.Theme {
	if t.config.Theme.Dark {
		return theme.DarkTheme()
	}
	return theme.LightTheme()
}

// Color returns the LCARS palette in dark mode
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.config.Theme.Dark {
		return t.base().Color(name, variant)
	}

	switch name {
	case theme.ColorNameBackground:
		return lcarsBlack
	case theme.ColorNameForeground:
		return lcarsPeach
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return lcarsOrange
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return lcarsPanel
	case theme.ColorNameHover:
		return color.NRGBA{R: lcarsLavender.R, G: lcarsLavender.G, B: lcarsLavender.B, A: 0x40}
	case theme.ColorNameSelection:
		return color.NRGBA{R: lcarsOrange.R, G: lcarsOrange.G, B: lcarsOrange.B, A: 0x5A}
	case theme.ColorNameSeparator:
		return lcarsBlue
	case theme.ColorNameHyperlink:
		return lcarsBlue
	case theme.ColorNameError:
		return lcarsRed
	case theme.ColorNameSuccess:
		return lcarsLavender
	}
	return t.base().Color(name, variant)
}

// Icon returns the base theme's icons
func (t *CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base().Icon(name)
}

// Font returns the base theme's fonts
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base().Font(style)
}

// Size applies the configured font size
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.config.Theme.FontSize > 0 {
		return float32(t.config.Theme.FontSize)
	}
	return t.base().Size(name)
}
