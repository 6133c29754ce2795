package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleDialogKey handles keys while the search dialog is open
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.config.Keys

	switch {
	case matchKey(msg, keys.Close):
		m.ctrl.Close()
		return m.syncOpen(true)

	case matchKey(msg, keys.Select):
		return m.selectActive()

	case matchKey(msg, keys.Down):
		m.ctrl.Next()
		return m.refreshPreview(), nil

	case matchKey(msg, keys.Up):
		m.ctrl.Prev()
		return m.refreshPreview(), nil

	case matchKey(msg, keys.Focus):
		if m.input.Focused() {
			m.input.Blur()
			m.ctrl.Blur()
			return m.refreshPreview(), nil
		}
		cmd := m.input.Focus()
		m.ctrl.Focus()
		return m.refreshPreview(), cmd

	case matchKey(msg, keys.Clear):
		return m.clearInput()

	case matchKey(msg, keys.Preview):
		m.showPreview = !m.showPreview
		m.previewFor = ""
		return m.refreshPreview(), nil

	case matchKey(msg, keys.History):
		return m.openHistory()

	case msg.String() == "pgdown" || msg.String() == "pgup":
		if m.showPreview {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if !m.input.Focused() {
		if matchKey(msg, keys.Help) {
			m.openHelp()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	tick := m.debounce()
	return m, tea.Batch(cmd, tick)
}

// submit hands the query to the controller and starts the fetch
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	req := m.ctrl.SetQuery(strings.TrimSpace(value))
	if req == nil {
		m.loading = false
		m.errorMsg = ""
		return m.refreshPreview(), nil
	}
	m.loading = true
	return m, tea.Batch(m.searchCmd(req), m.spinner.Tick)
}

// clearInput empties the box and resets the results right away
func (m Model) clearInput() (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	m.debounceID++
	model, cmd := m.submit("")
	mm := model.(Model)
	if !mm.input.Focused() {
		focus := mm.input.Focus()
		mm.ctrl.Focus()
		return mm, tea.Batch(cmd, focus)
	}
	return mm, cmd
}

// selectActive opens the highlighted hit, records it and closes
func (m Model) selectActive() (tea.Model, tea.Cmd) {
	query := m.ctrl.Query()
	count := len(m.ctrl.Hits())

	hit, ok, err := m.ctrl.Select()
	if !ok {
		return m, nil
	}

	model, cmd := m.syncOpen(true)
	mm := model.(Model)
	if err != nil {
		mm.errorMsg = err.Error()
	} else {
		mm.statusMsg = "Opened " + hit.Path
	}
	return mm, tea.Batch(cmd, mm.recordCmd(query, hit, count))
}
