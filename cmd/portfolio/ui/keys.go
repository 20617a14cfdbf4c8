package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/carousel"
)

// KeyMap holds the carousel key bindings.
type KeyMap struct {
	Previous      key.Binding
	Next          key.Binding
	Autoplay      key.Binding
	First         key.Binding
	Last          key.Binding
	Theme         key.Binding
	ReducedMotion key.Binding
	Detail        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/play"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		ReducedMotion: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "reduce motion"),
		),
		Detail: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "details"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Autoplay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last},
		{k.Autoplay, k.ReducedMotion, k.Theme, k.Detail},
		{k.Help, k.Quit},
	}
}

// CarouselKey translates a terminal key into a carousel key.
func (k KeyMap) CarouselKey(msg tea.KeyMsg) carousel.Key {
	switch {
	case key.Matches(msg, k.Previous):
		return carousel.KeyLeft
	case key.Matches(msg, k.Next):
		return carousel.KeyRight
	case key.Matches(msg, k.Autoplay):
		return carousel.KeySpace
	case key.Matches(msg, k.First):
		return carousel.KeyHome
	case key.Matches(msg, k.Last):
		return carousel.KeyEnd
	}
	return carousel.KeyUnknown
}
