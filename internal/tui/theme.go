// Package tui provides terminal detection, themed interactive prompts, and
// the spinner wrapper shared by commands.
package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme holds the currently configured theme for TUI components.
// When nil, currentThemeOrDefault() returns the default vspecTheme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// If the name is invalid or empty, the vspec theme is used.
func SetTheme(name string) {
	if name == "" {
		currentTheme = nil
		return
	}
	theme := GetTheme(name)
	if theme != nil {
		currentTheme = theme
	} else {
		// Fall back to vspec theme for invalid names
		currentTheme = nil
	}
}

// currentThemeOrDefault returns the current theme for TUI components.
// Returns the vspec theme if no theme has been set.
func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return vspecTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default (vspec).
// This is primarily useful for testing.
func resetTheme() {
	currentTheme = nil
}
