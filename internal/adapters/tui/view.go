package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/conspect/conspect/internal/ui/style"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(style.Copper)
	faintStyle  = lipgloss.NewStyle().Foreground(style.Slate)
	okStyle     = lipgloss.NewStyle().Foreground(style.Green)
	failStyle   = lipgloss.NewStyle().Foreground(style.Red)
	statusStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("conspect watch") + " " + faintStyle.Render(m.path) + "\n\n")

	b.WriteString(m.statusLine() + "\n\n")

	if !m.history.Empty() {
		b.WriteString(faintStyle.Render("Recent changes") + "\n")
		for record := range m.history.Values() {
			b.WriteString(statusStyle.Render(m.historyLine(record)) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render("q to quit"))

	return b.String()
}

func (m *Model) statusLine() string {
	if m.checks == 0 {
		return statusStyle.Render(faintStyle.Render("waiting for changes"))
	}

	if m.lastErr != nil {
		return statusStyle.Render(failStyle.Render(style.Cross + " invalid: " + m.lastErr.Error()))
	}
	return statusStyle.Render(okStyle.Render(fmt.Sprintf("%s valid (%d checks)", style.Check, m.checks)))
}

func (m *Model) historyLine(record checkRecord) string {
	stamp := record.at.Format("15:04:05")

	if record.err != nil {
		return fmt.Sprintf("%s %s %s %s", stamp, record.operation, failStyle.Render(style.Cross), record.err.Error())
	}
	return fmt.Sprintf("%s %s %s", stamp, record.operation, okStyle.Render(style.Check))
}
