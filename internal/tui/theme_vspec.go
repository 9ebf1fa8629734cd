package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Adaptive palette for the built-in theme. Light values target light
// terminal backgrounds, dark values dark ones.
var (
	vspecVioletPrimary = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#8b5cf6"}
	vspecVioletBright  = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	vspecVioletAccent  = lipgloss.AdaptiveColor{Light: "#5b21b6", Dark: "#c4b5fd"}

	vspecTextStrong = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	vspecTextNormal = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#e5e7eb"}
	vspecTextMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	vspecTextFaint  = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}

	vspecBorderFocused = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#8b5cf6"}
	vspecBorderNormal  = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"}

	vspecButtonBg          = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#7c3aed"}
	vspecButtonBgBlurred   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#1f2937"}
	vspecButtonText        = lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#f9fafb"}
	vspecButtonTextBlurred = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
)

// vspecTheme builds the default huh theme used by interactive prompts.
func vspecTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(vspecBorderFocused)
	t.Focused.Title = t.Focused.Title.
		Bold(true).
		Foreground(vspecVioletBright)
	t.Focused.Description = t.Focused.Description.Foreground(vspecTextMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(lipgloss.Color("1"))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(lipgloss.Color("1"))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(vspecVioletPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(vspecVioletAccent)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(vspecVioletPrimary)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(vspecTextNormal)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(vspecVioletPrimary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Bold(true).
		Padding(0, 1).
		Background(vspecButtonBg).
		Foreground(vspecButtonText)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Padding(0, 1).
		Background(vspecButtonBgBlurred).
		Foreground(vspecButtonTextBlurred)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderForeground(vspecBorderNormal)
	t.Blurred.Title = t.Blurred.Title.Foreground(vspecTextMuted)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(vspecTextStrong)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(vspecTextFaint)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(vspecTextFaint)
	t.Help.FullKey = t.Help.FullKey.Foreground(vspecTextStrong)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(vspecTextFaint)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(vspecTextFaint)

	return t
}
