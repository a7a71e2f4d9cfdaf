package model

import "strings"

// ThemeVariant selects one of the two built-in palettes.
type ThemeVariant int

const (
	ThemeDark ThemeVariant = iota
	ThemeLight
)

// Toggle returns the other variant.
func (v ThemeVariant) Toggle() ThemeVariant {
	if v == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the config name of the variant ("dark" or "light").
func (v ThemeVariant) String() string {
	if v == ThemeLight {
		return "light"
	}
	return "dark"
}

// Label names the active mode as shown on the theme toggle.
func (v ThemeVariant) Label() string {
	if v == ThemeLight {
		return "Light mode"
	}
	return "Dark mode"
}

// ParseThemeVariant maps a config value to a variant. Anything other than
// "light" (case-insensitive) selects dark.
func ParseThemeVariant(s string) ThemeVariant {
	if strings.EqualFold(strings.TrimSpace(s), "light") {
		return ThemeLight
	}
	return ThemeDark
}

// Palette is the full set of colors applied to every themable widget.
// Colors are "#rrggbb" hex strings.
type Palette struct {
	Background       string
	Foreground       string
	FieldBackground  string
	FieldForeground  string
	ButtonBackground string
	ButtonForeground string
	ButtonActive     string // pressed state
	Border           string
}

var (
	darkPalette = Palette{
		Background:       "#1e1e1e",
		Foreground:       "#eaeaea",
		FieldBackground:  "#2b2b2b",
		FieldForeground:  "#ffffff",
		ButtonBackground: "#3a3d41",
		ButtonForeground: "#f0f0f0",
		ButtonActive:     "#505860",
		Border:           "#454545",
	}
	lightPalette = Palette{
		Background:       "#f3f3f3",
		Foreground:       "#1e1e1e",
		FieldBackground:  "#ffffff",
		FieldForeground:  "#000000",
		ButtonBackground: "#e1e1e1",
		ButtonForeground: "#1e1e1e",
		ButtonActive:     "#c8c8c8",
		Border:           "#b4b4b4",
	}
)

// PaletteFor returns the fixed palette for v.
func PaletteFor(v ThemeVariant) Palette {
	if v == ThemeLight {
		return lightPalette
	}
	return darkPalette
}
