// Package styles contains Lip Gloss style definitions shared by tessera's
// UI components.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"} // Row titles
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Hints, help text, status bar

	// Semantic color names - Status
	StatusErrorColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Selection indicator color (the ">" prefix on the focused row)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	// SelectionIndicatorStyle renders the focused-row prefix.
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// StatusBarStyle renders the bottom status line.
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
)

// Theme carries the configurable accent colors; everything else uses the
// package-level styles above.
type Theme struct {
	Highlight lipgloss.Color
	Subtle    lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Highlight: lipgloss.Color("#7D56F4"),
		Subtle:    lipgloss.Color("#6C7086"),
		Error:     lipgloss.Color("#F38BA8"),
		Success:   lipgloss.Color("#73F59F"),
	}
}

// ThemeFromColors builds a Theme from hex strings, falling back to the
// default for any empty value. Invalid strings are the config validator's
// problem, not ours.
func ThemeFromColors(highlight, subtle, errColor, success string) Theme {
	theme := DefaultTheme()
	if highlight != "" {
		theme.Highlight = lipgloss.Color(highlight)
	}
	if subtle != "" {
		theme.Subtle = lipgloss.Color(subtle)
	}
	if errColor != "" {
		theme.Error = lipgloss.Color(errColor)
	}
	if success != "" {
		theme.Success = lipgloss.Color(success)
	}
	return theme
}
