package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	menuPaneWidth = 24
	formPaneWidth = 44
)

func (m Model) paneHeight() int {
	// Banner, help line, and borders eat vertical space.
	h := m.height - 14
	if h < 8 {
		h = 8
	}
	return h
}

func (m Model) logPaneWidth() int {
	w := m.width - menuPaneWidth - formPaneWidth - 12
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderMenuPane(),
		m.renderFormPane(),
		m.renderLogPane(),
	)
	b.WriteString(panes)
	b.WriteString("\n")

	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHelp() string {
	key := m.styles.Key.Render
	sub := m.styles.Subtle.Render

	bindings := []struct{ key, label string }{
		{"Tab", "focus"},
		{"↑/↓", "navigate"},
		{"Enter", "select"},
		{"Space", "toggle"},
		{"r", "run selected"},
		{"c", "copy log"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		parts = append(parts, key(binding.key)+sub(": "+binding.label))
	}
	return sub("v"+m.version) + "  " + strings.Join(parts, sub(", "))
}

func (m Model) renderMenuPane() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Simetrio"))
	b.WriteString("\n")

	for i, item := range m.menuItems {
		marker := "  "
		if m.hasSelection && item.action == m.selectedAction {
			marker = "• "
		}
		if i == m.selectedItem && m.focus == focusMenu {
			b.WriteString(m.styles.SelectedOption.Render("▶ " + marker + item.label))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + marker + item.label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.runner.Busy() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Normal.Render(" running..."))
	} else {
		b.WriteString(m.styles.Subtle.Render("idle"))
	}

	return m.panelStyle(focusMenu).Width(menuPaneWidth).Height(m.paneHeight()).Render(b.String())
}

func (m Model) renderFormPane() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Parameters"))
	b.WriteString("\n")

	labels := []string{"Instance", "Memory", "CPUs", "Disk"}
	for i := range m.inputs {
		cursor := "  "
		if m.focus == focusForm && m.selectedField == i {
			cursor = "▶ "
		}
		b.WriteString(m.styles.Bold.Render(cursor + labels[i]))
		b.WriteString("\n")
		b.WriteString("  " + m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, toggle := range m.toggles {
		field := fieldKDE + i
		box := "[ ]"
		if toggle.on {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, toggle.label)
		if m.focus == focusForm && m.selectedField == field {
			b.WriteString(m.styles.SelectedOption.Render("▶ " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return m.panelStyle(focusForm).Width(formPaneWidth).Height(m.paneHeight()).Render(b.String())
}

func (m Model) renderLogPane() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Output"))
	b.WriteString("\n")
	b.WriteString(m.logView.View())

	return m.panelStyle(focusLog).Width(m.logPaneWidth()).Height(m.paneHeight()).Render(b.String())
}

// styledLog renders the buffer for display, coloring well-known status
// lines. The buffer itself stays unstyled: export copies raw text.
func (m Model) styledLog() string {
	lines := m.buffer.Lines()
	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = m.styleLogLine(line)
	}
	return strings.Join(styled, "\n")
}

func (m Model) styleLogLine(line string) string {
	switch {
	case strings.HasPrefix(line, "Worker error:"),
		strings.HasPrefix(line, "Copy failed:"),
		strings.HasPrefix(line, "Error preparing action:"),
		strings.Contains(line, "Manual intervention required."):
		return m.styles.Error.Render(line)
	case strings.HasPrefix(line, "Another task is running"),
		strings.HasPrefix(line, "No action selected"):
		return m.styles.Warning.Render(line)
	case line == "Dependencies satisfied.",
		line == "Process exited with 0",
		strings.HasPrefix(line, "Log copied to clipboard"):
		return m.styles.Success.Render(line)
	}
	return line
}

func (m Model) panelStyle(zone focusZone) lipgloss.Style {
	if m.focus == zone {
		return m.styles.FocusedPanel
	}
	return m.styles.Panel
}
