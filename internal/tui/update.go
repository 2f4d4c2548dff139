package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, max(m.height-3, 4))
		return m, nil
	case tea.KeyMsg:
		// While filtering, every key belongs to the list.
		if m.l.FilterState() == list.Filtering {
			return m.updateList(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.showHelp = !m.showHelp
			return m, nil
		}
	}
	return m.updateList(msg)
}

// updateList forwards msg to the sidebar list, refreshing the sketch when
// the selection moved.
func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.l.Index()
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	if m.l.Index() != before {
		m.loadSketch()
	}
	return m, cmd
}
