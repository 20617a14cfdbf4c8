package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/ux"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("PORTFOLIO_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "")
	t.Setenv("PORTFOLIO_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
	assert.Equal(t, ux.ThemeSystem, DetectTheme().Name)
}

func TestResolveTheme(t *testing.T) {
	assert.False(t, ResolveTheme(ux.ThemeLight).IsDark)
	assert.True(t, ResolveTheme(ux.ThemeDark).IsDark)
	assert.Equal(t, "dark", ResolveTheme(ux.ThemeDark).GlamourStyle())
	assert.Equal(t, "light", ResolveTheme(ux.ThemeLight).GlamourStyle())
}
