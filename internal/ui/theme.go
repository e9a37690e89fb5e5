// Package ui provides the SurMesure application UI components.
//
// This file defines a custom compact Fyne theme for a dense configurator layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SurMesureTheme wraps the default Fyne theme with compact sizing overrides
// so the step panels and price breakdown stay readable side by side.
type SurMesureTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewSurMesureTheme creates a new SurMesureTheme with the system default variant.
func NewSurMesureTheme() *SurMesureTheme {
	return &SurMesureTheme{
		base:    theme.DefaultTheme(),
		variant: 0, // system default
	}
}

// SetVariant updates the theme variant (light/dark/system).
func (t *SurMesureTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color delegates to the base theme with the stored variant.
func (t *SurMesureTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *SurMesureTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *SurMesureTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *SurMesureTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
