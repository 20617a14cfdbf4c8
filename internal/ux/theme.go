package ux

import "fmt"

// Theme is the viewer's colour preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Next cycles light → dark → system → light. Unknown values restart at light.
func (t Theme) Next() Theme {
	switch t {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	default:
		return ThemeLight
	}
}

// Label is the short text shown on the theme toggle.
func (t Theme) Label() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "System"
	}
}

// ParseTheme accepts light, dark, system or empty (system).
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s), nil
	case "":
		return ThemeSystem, nil
	}
	return ThemeSystem, fmt.Errorf("unknown theme %q", s)
}
