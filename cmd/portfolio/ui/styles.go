// Package ui is the terminal host for the portfolio carousel. It turns
// bubbletea key, mouse and resize events into controller calls and draws
// composed frames with lipgloss.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/ux"
)

// Monochrome palette with a single accent, matching the site's black and
// white look.
var (
	LightForeground = lipgloss.Color("#000000")
	LightMuted      = lipgloss.Color("#6b6b6b")
	LightBorder     = lipgloss.Color("#d4d4d4")
	LightCard       = lipgloss.Color("#ffffff")

	DarkForeground = lipgloss.Color("#f5f5f5")
	DarkMuted      = lipgloss.Color("#9a9a9a")
	DarkBorder     = lipgloss.Color("#3a3a3a")
	DarkCard       = lipgloss.Color("#111111")

	Accent = lipgloss.Color("#8BC34A")
)

// Theme holds the current color scheme
type Theme struct {
	Name       ux.Theme
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	Accent     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Name:       ux.ThemeLight,
		Foreground: LightForeground,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		Accent:     Accent,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Name:       ux.ThemeDark,
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		Accent:     Accent,
		IsDark:     true,
	}
}

// DetectTheme guesses the terminal background from COLORFGBG, falling back
// to PORTFOLIO_DARK_MODE and then light.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		// "foreground;background"; indices 0-6 and 8 are dark backgrounds.
		parts := strings.Split(colorTerm, ";")
		if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return withName(DarkTheme(), ux.ThemeSystem)
			}
		}
	}

	if os.Getenv("PORTFOLIO_DARK_MODE") == "1" {
		return withName(DarkTheme(), ux.ThemeSystem)
	}

	return withName(LightTheme(), ux.ThemeSystem)
}

// ResolveTheme maps a viewer preference to a concrete theme.
func ResolveTheme(pref ux.Theme) Theme {
	switch pref {
	case ux.ThemeLight:
		return LightTheme()
	case ux.ThemeDark:
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

func withName(t Theme, name ux.Theme) Theme {
	t.Name = name
	return t
}

// GlamourStyle names the glamour style that suits the theme.
func (t Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Footer lipgloss.Style
	Muted  lipgloss.Style
	Live   lipgloss.Style

	// Cards by distance from the focal position
	FocalCard       lipgloss.Style
	FocalCardMoving lipgloss.Style
	NearCard        lipgloss.Style
	FarCard         lipgloss.Style

	CardTitle lipgloss.Style
	CardMeta  lipgloss.Style
	CardLink  lipgloss.Style
	CTATitle  lipgloss.Style
	CTAButton lipgloss.Style

	Control        lipgloss.Style
	ControlPressed lipgloss.Style
	Indicator      lipgloss.Style
	IndicatorOn    lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Live: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true).
			Padding(0, 1),

		FocalCard: card.
			BorderForeground(theme.Foreground).
			Foreground(theme.Foreground),

		FocalCardMoving: card.
			BorderForeground(theme.Accent).
			Foreground(theme.Foreground),

		NearCard: card.
			Foreground(theme.Foreground),

		FarCard: card.
			Foreground(theme.Muted).
			Faint(true),

		CardTitle: lipgloss.NewStyle().
			Bold(true),

		CardMeta: lipgloss.NewStyle().
			Foreground(theme.Muted),

		CardLink: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Underline(true),

		CTATitle: lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center),

		CTAButton: lipgloss.NewStyle().
			Foreground(theme.Card).
			Background(theme.Foreground).
			Padding(0, 2),

		Control: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ControlPressed: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Indicator: lipgloss.NewStyle().
			Foreground(theme.Muted),

		IndicatorOn: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),
	}
}
