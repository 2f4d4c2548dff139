package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.Color("#6B7280")
	errFg     = lipgloss.Color("#EF4444")

	titleStyle     = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(baseDimFg)
	errorStyle     = lipgloss.NewStyle().Foreground(errFg)
	plotTitleStyle = lipgloss.NewStyle().Bold(true)

	// seriesPalette colors legend markers in series order.
	seriesPalette = []lipgloss.Color{
		"#E24A33", "#348ABD", "#988ED5", "#777777", "#FBC15E", "#8EBA42",
	}
)

func seriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seriesPalette[i%len(seriesPalette)])
}
