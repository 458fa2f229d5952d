// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the default selection color
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#B388FF"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle()

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)
)

// Tab strip styles
var (
	// TabStrip is the container for the tab strip
	TabStrip = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Subtle)

	// Tab is for unselected tabs
	Tab = lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(Subtle)

	// TabSelected is for the selected tab; colors are set from the palette
	TabSelected = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Bold(true)

	// TabScrollMarker hints at tabs hidden beyond either edge
	TabScrollMarker = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true)
)

// Grid styles
var (
	// Cell is the base style of a grid cell
	Cell = lipgloss.NewStyle().
		Align(lipgloss.Center)

	// CellIcon is the icon line of a cell
	CellIcon = lipgloss.NewStyle().
			Bold(true)

	// PageDot is for pages other than the current one
	PageDot = lipgloss.NewStyle().
		Foreground(Subtle).
		Faint(true)

	// PageDotActive is for the current page
	PageDotActive = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	// EmptyGrid is for the placeholder shown by an empty tab
	EmptyGrid = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Padding(0, 1)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(0, 1)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Padding(0, 1)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator is the separator between key and description
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Spinner style
var (
	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)

// Darken returns hex darkened by amount (0..1) in the Lab color space.
// Colors that do not parse are returned unchanged.
func Darken(hex string, amount float64) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	l, a, b := c.Lab()
	l -= amount
	if l < 0 {
		l = 0
	}
	return lipgloss.Color(colorful.Lab(l, a, b).Clamped().Hex())
}

// Color returns hex as a lipgloss color, or fallback when hex is empty.
func Color(hex string, fallback lipgloss.TerminalColor) lipgloss.TerminalColor {
	if hex == "" {
		return fallback
	}
	return lipgloss.Color(hex)
}
