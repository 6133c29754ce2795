// internal/ui/app.go
package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case DebounceMsg:
		if msg.ID != m.debounceID || !m.ctrl.IsOpen() {
			return m, nil
		}
		return m.submit(m.input.Value())

	case SearchResultMsg:
		return m.applyResult(msg), nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case HistoryLoadedMsg:
		if msg.Err != nil {
			m.errorMsg = "history: " + msg.Err.Error()
			return m, nil
		}
		m.historyEntries = msg.Entries
		m.historyTable = newHistoryTable(msg.Entries, m.dialogWidth(), m.config.Theme)
		return m, nil

	case HistorySavedMsg:
		if msg.Err != nil {
			log.Printf("ui: failed to record history: %v", msg.Err)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes a key press: global listeners first, then the topmost
// popup, then the dialog, then the page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	wasOpen := m.ctrl.IsOpen()
	if m.window.DispatchKey(key) {
		return m.syncOpen(wasOpen)
	}

	if !m.popupStack.IsEmpty() {
		return m.handlePopupKey(msg)
	}

	if m.ctrl.IsOpen() {
		return m.handleDialogKey(msg)
	}
	return m.handlePageKey(msg)
}

func (m Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matchKey(msg, m.config.Keys.Quit):
		return m, tea.Quit
	case matchKey(msg, m.config.Keys.Help):
		m.openHelp()
		return m, nil
	case matchKey(msg, m.config.Keys.History):
		return m.openHistory()
	case matchKey(msg, m.config.Keys.Select):
		m.ctrl.Open()
		return m.syncOpen(false)
	}
	return m, nil
}

// syncOpen reconciles components after the controller's open state may
// have changed underneath them.
func (m Model) syncOpen(wasOpen bool) (tea.Model, tea.Cmd) {
	open := m.ctrl.IsOpen()
	if open == wasOpen {
		return m, nil
	}
	m.errorMsg = ""
	m.loading = false
	m.debounceID++
	m.input.SetValue("")
	if open {
		// the dialog takes the keyboard, so nothing may stay stacked above it
		for m.popupStack.CloseTop(&m) {
		}
		m.statusMsg = ""
		m.input.Focus()
		m.ctrl.Focus()
		return m, textinput.Blink
	}
	m.input.Blur()
	m.showPreview = false
	m.previewFor = ""
	return m, nil
}

// applyResult commits a search answer, dropping it when a newer submission
// superseded it.
func (m Model) applyResult(msg SearchResultMsg) Model {
	if !m.ctrl.Current(msg.Seq) {
		log.Printf("ui: ignoring results for %q (seq %d)", msg.Term, msg.Seq)
		return m
	}
	m.loading = false
	if msg.Err != nil {
		log.Printf("ui: search %q failed: %v", msg.Term, msg.Err)
		m.errorMsg = msg.Err.Error()
		return m
	}
	m.errorMsg = ""
	m.ctrl.Apply(msg.Seq, msg.Resp)
	return m.refreshPreview()
}
