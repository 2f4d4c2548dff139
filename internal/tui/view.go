package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" coplot ─ terminal figure preview ")
	contentHeight := max(m.height-3, 4)

	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	plotWidth := max(m.width-sidebarWidth-1, 16)
	plot := m.renderSketch(plotWidth, contentHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plot)

	footer := dimStyle.Render(" " + m.status + " ")
	if m.showHelp {
		footer += helpView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderSketch lays out the title, the braille canvas and the legend within
// a w by h cell area.
func (m Model) renderSketch(w, h int) string {
	if m.err != nil {
		return errorStyle.Render("sketch error: " + m.err.Error())
	}
	canvasH := max(h-2, 2)
	rows := Rasterize(m.sketch, w, canvasH)
	return lipgloss.JoinVertical(lipgloss.Left,
		plotTitleStyle.Render(m.sketch.Title),
		strings.Join(rows, "\n"),
		m.legendView(),
	)
}

// legendView lists the series with colored markers, squares for bars and
// dashes for lines.
func (m Model) legendView() string {
	parts := make([]string, 0, len(m.sketch.Series))
	for i, s := range m.sketch.Series {
		marker := "─"
		if s.Bars {
			marker = "■"
		}
		label := s.Label
		if label == "" {
			label = fmt.Sprintf("series %d", i+1)
		}
		parts = append(parts, seriesStyle(i).Render(marker)+" "+label)
	}
	return dimStyle.Render(strings.Join(parts, "   "))
}

func helpView() string {
	keys := []string{
		"↑↓ select",
		"/ filter",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
