package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"coplot/internal/figure"
)

const sidebarWidth = 30

// figureItem adapts a figure.Info to the sidebar list.
type figureItem struct {
	info figure.Info
}

func (f figureItem) Title() string       { return f.info.Name }
func (f figureItem) Description() string { return f.info.Title }
func (f figureItem) FilterValue() string { return f.info.Name }

// Model holds the preview state: the sidebar list and the sketch of the
// currently selected figure.
type Model struct {
	reg *figure.Registry

	width  int
	height int

	showHelp bool

	l      list.Model
	sketch figure.Sketch
	err    error
	status string
}

// New builds the model over the registry, selecting the figure named
// initial when it exists.
func New(reg *figure.Registry, initial string) Model {
	builders := reg.All()
	items := make([]list.Item, len(builders))
	start := 0
	for i, b := range builders {
		items[i] = figureItem{info: b.Info()}
		if b.Info().Name == initial {
			start = i
		}
	}

	d := list.NewDefaultDelegate()
	l := list.New(items, d, sidebarWidth-2, 10)
	l.Title = "Figures"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Select(start)

	m := Model{reg: reg, l: l}
	m.loadSketch()
	return m
}

// loadSketch rebuilds the sketch for the selected figure.
func (m *Model) loadSketch() {
	it, ok := m.l.SelectedItem().(figureItem)
	if !ok {
		return
	}
	b, ok := m.reg.Lookup(it.info.Name)
	if !ok {
		return
	}
	sk, err := b.Sketch(b.DefaultTable())
	m.sketch, m.err = sk, err
	if err != nil {
		m.status = "sketch error: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("%s: %d series", it.info.Name, len(sk.Series))
}

func (m Model) Init() tea.Cmd { return nil }
