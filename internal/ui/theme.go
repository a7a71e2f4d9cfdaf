// Package ui provides the QuickCalc application UI components.
//
// This file maps the calculator palettes onto Fyne themes.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/piwi3910/QuickCalc/internal/model"
)

// resolvedPalette holds a model.Palette converted to concrete colors.
type resolvedPalette struct {
	background       color.Color
	foreground       color.Color
	fieldBackground  color.Color
	fieldForeground  color.Color
	buttonBackground color.Color
	buttonForeground color.Color
	buttonActive     color.Color
	buttonHover      color.Color
	border           color.Color
}

func resolvePalette(p model.Palette) resolvedPalette {
	buttonBg := parseHex(p.ButtonBackground)
	buttonActive := parseHex(p.ButtonActive)
	return resolvedPalette{
		background:       toNRGBA(parseHex(p.Background)),
		foreground:       toNRGBA(parseHex(p.Foreground)),
		fieldBackground:  toNRGBA(parseHex(p.FieldBackground)),
		fieldForeground:  toNRGBA(parseHex(p.FieldForeground)),
		buttonBackground: toNRGBA(buttonBg),
		buttonForeground: toNRGBA(parseHex(p.ButtonForeground)),
		buttonActive:     toNRGBA(buttonActive),
		buttonHover:      toNRGBA(buttonBg.BlendRgb(buttonActive, 0.5)),
		border:           toNRGBA(parseHex(p.Border)),
	}
}

// parseHex returns black for malformed input; the built-in palettes are
// covered by tests.
func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

func fyneVariant(v model.ThemeVariant) fyne.ThemeVariant {
	if v == model.ThemeLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

// CalcTheme is the application-wide theme. It pins the Fyne variant to the
// active palette so the OS light/dark preference does not leak through.
type CalcTheme struct {
	base    fyne.Theme
	variant model.ThemeVariant
	colors  resolvedPalette
}

var _ fyne.Theme = (*CalcTheme)(nil)

// NewCalcTheme builds the theme for one palette variant.
func NewCalcTheme(variant model.ThemeVariant) *CalcTheme {
	return &CalcTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		colors:  resolvePalette(model.PaletteFor(variant)),
	}
}

// Variant returns the palette variant this theme was built from.
func (t *CalcTheme) Variant() model.ThemeVariant {
	return t.variant
}

// Color maps palette slots to Fyne color names and delegates the rest.
func (t *CalcTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground,
		theme.ColorNameMenuBackground, theme.ColorNameHeaderBackground:
		return t.colors.background
	case theme.ColorNameForeground:
		return t.colors.foreground
	case theme.ColorNameInputBackground:
		return t.colors.fieldBackground
	case theme.ColorNameButton, theme.ColorNamePrimary:
		return t.colors.buttonBackground
	case theme.ColorNameForegroundOnPrimary:
		return t.colors.buttonForeground
	case theme.ColorNamePressed:
		return t.colors.buttonActive
	case theme.ColorNameHover:
		return t.colors.buttonHover
	case theme.ColorNameInputBorder, theme.ColorNameSeparator, theme.ColorNameFocus:
		return t.colors.border
	default:
		return t.base.Color(name, fyneVariant(t.variant))
	}
}

// Font delegates to the base theme.
func (t *CalcTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *CalcTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns slightly larger text for the result line and operand fields.
func (t *CalcTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameSubHeadingText:
		return 18
	case theme.SizeNamePadding:
		return 5
	default:
		return t.base.Size(name)
	}
}

// fieldTheme overrides the text color inside the operand entries, which Fyne
// otherwise draws with the global foreground.
type fieldTheme struct {
	*CalcTheme
}

func newFieldTheme(parent *CalcTheme) *fieldTheme {
	return &fieldTheme{CalcTheme: parent}
}

func (t *fieldTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameForeground {
		return t.colors.fieldForeground
	}
	return t.CalcTheme.Color(name, variant)
}
