// internal/ui/handle_popup.go
// Popup key handling and opener helpers.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handlePopupKey sends a key to the topmost popup
func (m Model) handlePopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if matchKey(msg, m.config.Keys.Close) || msg.String() == "q" {
		m.popupStack.CloseTop(&m)
		return m, nil
	}

	switch m.popupStack.TopName() {
	case popupHistory:
		return m.handleHistoryKey(msg)
	case popupHelp:
		if matchKey(msg, m.config.Keys.Help) {
			m.popupStack.CloseTop(&m)
		}
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matchKey(msg, m.config.Keys.Select):
		query, ok := highlightedQuery(m.historyTable)
		if !ok {
			return m, nil
		}
		m.popupStack.CloseTop(&m)
		return m.rerun(query)

	case msg.String() == "d" || msg.String() == "delete":
		query, ok := highlightedQuery(m.historyTable)
		if !ok {
			return m, nil
		}
		return m, m.forgetQueryCmd(query)
	}

	var cmd tea.Cmd
	m.historyTable, cmd = m.historyTable.Update(msg)
	return m, cmd
}

// rerun opens the dialog on a past query and searches it immediately
func (m Model) rerun(query string) (tea.Model, tea.Cmd) {
	var openCmd tea.Cmd
	if !m.ctrl.IsOpen() {
		m.ctrl.Open()
		model, cmd := m.syncOpen(false)
		m, openCmd = model.(Model), cmd
	}
	m.input.SetValue(query)
	m.input.CursorEnd()
	m.debounceID++

	model, cmd := m.submit(query)
	return model, tea.Batch(openCmd, cmd)
}

func (m *Model) openHelp() {
	m.showHelpPopup = true
	m.popupStack.Push(popupHelp, func(m *Model) { m.showHelpPopup = false })
}

func (m Model) openHistory() (tea.Model, tea.Cmd) {
	if m.historyStore == nil {
		m.statusMsg = "History is disabled"
		return m, nil
	}
	m.showHistoryPopup = true
	m.popupStack.Push(popupHistory, func(m *Model) { m.showHistoryPopup = false })
	return m, m.loadHistoryCmd()
}
