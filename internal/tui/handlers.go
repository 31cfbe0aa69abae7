package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % 3
		m.syncInputFocus()
		return m, nil
	}

	switch m.focus {
	case focusForm:
		return m.handleFormKey(msg)
	case focusLog:
		return m.handleLogKey(msg)
	default:
		return m.handleMenuKey(msg)
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selectedItem > 0 {
			m.selectedItem--
		}
	case "down", "j":
		if m.selectedItem < len(m.menuItems)-1 {
			m.selectedItem++
		}
	case "enter", " ":
		m.selectAction(m.menuItems[m.selectedItem])
	case "r":
		return m, m.runSelected()
	case "c":
		return m, m.copyLog()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		if m.selectedField > 0 {
			m.selectedField--
			m.syncInputFocus()
		}
		return m, nil
	case "down", "enter":
		if m.selectedField < fieldCount-1 {
			m.selectedField++
			m.syncInputFocus()
		}
		return m, nil
	case " ":
		if m.selectedField >= fieldKDE {
			m.toggles[m.selectedField-fieldKDE].on = !m.toggles[m.selectedField-fieldKDE].on
			return m, nil
		}
	case "esc":
		m.focus = focusMenu
		m.syncInputFocus()
		return m, nil
	}

	if m.selectedField < fieldKDE {
		var cmd tea.Cmd
		m.inputs[m.selectedField], cmd = m.inputs[m.selectedField].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		return m, m.runSelected()
	case "c":
		return m, m.copyLog()
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

// syncInputFocus keeps exactly one text input focused, and only while the
// form zone owns the keyboard.
func (m *Model) syncInputFocus() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focus == focusForm && m.selectedField < fieldKDE {
		m.inputs[m.selectedField].Focus()
	}
}
