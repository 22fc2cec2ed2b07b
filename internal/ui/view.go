package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/faizmokh/amigos/internal/person"
)

const (
	defaultWidth = 80
	minListWidth = 18
	maxListWidth = 32
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := "Amigos"
	if len(m.keywords) > 0 {
		header += fmt.Sprintf(" - matching %q", strings.Join(m.keywords, " "))
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		listWidth := m.listWidth()
		list := paneStyle.Width(listWidth).Render(m.renderList(listWidth))
		detailWidth := max(m.width-listWidth-8, 20)
		detail := paneStyle.Width(detailWidth).Render(m.renderDetail())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	if m.mode != modeNormal {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Navigation: j/k select  / find  esc clear filter  r reload"))
	b.WriteByte('\n')
	b.WriteString(mutedStyle.Render("Actions: L add log  y copy contact  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) listWidth() int {
	w := m.width / 3
	switch {
	case w < minListWidth:
		return minListWidth
	case w > maxListWidth:
		return maxListWidth
	default:
		return w
	}
}

func (m Model) renderList(width int) string {
	if len(m.visible) == 0 {
		return mutedStyle.Render("(no friends)")
	}

	lines := make([]string, 0, len(m.visible))
	for i, p := range m.visible {
		line := formatListItem(i, p, width)
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	if len(m.visible) == 0 || m.selected >= len(m.visible) {
		return mutedStyle.Render("Select a friend to see their details.")
	}
	p := m.visible[m.selected]
	if len(p.Logs) == 0 {
		return p.Card() + mutedStyle.Render("No logs yet. Press L to add one.")
	}
	return strings.TrimRight(p.Card(), "\n")
}

// formatListItem renders "N. Name" padded or truncated to exactly width cells.
func formatListItem(index int, p person.Person, width int) string {
	line := fmt.Sprintf("%d. %s", index+1, p.Name)
	if runewidth.StringWidth(line) > width {
		return runewidth.Truncate(line, width, "…")
	}
	return runewidth.FillRight(line, width)
}
