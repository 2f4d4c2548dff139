package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"coplot/internal/figure"
)

// Run starts the interactive preview over the registered figures. It
// blocks until the user quits.
func Run(reg *figure.Registry, initial string) error {
	p := tea.NewProgram(New(reg, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
