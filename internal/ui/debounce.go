package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounce schedules a submission of the current input. Each keystroke
// invalidates the previous tick.
func (m *Model) debounce() tea.Cmd {
	m.debounceID++
	id := m.debounceID
	return tea.Tick(m.config.UI.Debounce(), func(_ time.Time) tea.Msg {
		return DebounceMsg{ID: id}
	})
}
