package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles
	ColorHighlight = "205" // Magenta - focused buttons, borders
	ColorMuted     = "241" // Gray - hints, placeholders
	ColorText      = "252" // Light gray - normal text
)

// Styles contains the shared style definitions for the closet view.
var Styles = struct {
	Title         lipgloss.Style // Bold accent - "Closet Manager"
	Status        lipgloss.Style // Status line
	Section       lipgloss.Style // "Clothing Items:" header
	Empty         lipgloss.Style // Empty list placeholder
	Item          lipgloss.Style // Item row text
	Button        lipgloss.Style // Unfocused button
	ButtonFocused lipgloss.Style // Focused button
	Box           lipgloss.Style // Frame around the whole view
	Hint          lipgloss.Style // Help bar text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Item: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	ButtonFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
