package tui

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Confirm shows a yes/no confirmation prompt.
func Confirm(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Select shows a single-select prompt.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// MultiSelect shows a multi-select prompt with defaults preselected.
func MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error) {
	selected := make([]string, len(defaults))
	copy(selected, defaults)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return nil, err
	}
	return selected, nil
}

// WithSpinner runs fn behind a spinner when the terminal is interactive, and
// plainly otherwise.
func WithSpinner(ctx context.Context, title string, fn func()) error {
	if !IsInteractive() {
		fn()
		return nil
	}
	return spinner.New().
		Title(title).
		Context(ctx).
		Action(fn).
		Run()
}
