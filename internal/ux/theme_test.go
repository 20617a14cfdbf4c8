package ux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNext(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Next())
	assert.Equal(t, ThemeSystem, ThemeDark.Next())
	assert.Equal(t, ThemeLight, ThemeSystem.Next())
	assert.Equal(t, ThemeLight, Theme("bogus").Next())
}

func TestParseTheme(t *testing.T) {
	for _, in := range []string{"light", "dark", "system"} {
		got, err := ParseTheme(in)
		assert.NoError(t, err)
		assert.Equal(t, Theme(in), got)
	}

	got, err := ParseTheme("")
	assert.NoError(t, err)
	assert.Equal(t, ThemeSystem, got)

	_, err = ParseTheme("amber")
	assert.Error(t, err)
}

func TestThemeLabel(t *testing.T) {
	assert.Equal(t, "Light", ThemeLight.Label())
	assert.Equal(t, "Dark", ThemeDark.Label())
	assert.Equal(t, "System", ThemeSystem.Label())
}
