package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse maps clicks and motion onto the page and dialog
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.popupStack.IsEmpty() {
		return m, nil
	}

	if !m.ctrl.IsOpen() {
		if isLeftPress(msg) && m.inTrigger(msg.X, msg.Y) {
			m.ctrl.Open()
			return m.syncOpen(false)
		}
		return m, nil
	}

	l := m.layoutDialog()

	switch {
	case msg.Action == tea.MouseActionMotion:
		if i := l.hitAtCell(msg.X, msg.Y); i >= 0 {
			m.ctrl.Hover(i)
			return m.refreshPreview(), nil
		}

	case msg.Button == tea.MouseButtonWheelDown:
		m.ctrl.Next()
		return m.refreshPreview(), nil

	case msg.Button == tea.MouseButtonWheelUp:
		m.ctrl.Prev()
		return m.refreshPreview(), nil

	case isLeftPress(msg):
		if !l.contains(msg.X, msg.Y) {
			m.ctrl.Close()
			return m.syncOpen(true)
		}
		switch l.zoneAtCell(msg.X, msg.Y) {
		case zoneClose:
			m.ctrl.Close()
			return m.syncOpen(true)
		case zoneClear:
			return m.clearInput()
		case zoneFeedback:
			m.openFeedback()
			return m, nil
		}
		if i := l.hitAtCell(msg.X, msg.Y); i >= 0 {
			m.ctrl.Hover(i)
			return m.selectActive()
		}
	}
	return m, nil
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// openFeedback opens the "missing results" issue link
func (m *Model) openFeedback() {
	if m.router == nil {
		return
	}
	link := m.ctrl.FeedbackLink()
	if err := m.router.Navigate(link); err != nil {
		log.Printf("ui: cannot open feedback link: %v", err)
		m.errorMsg = err.Error()
		return
	}
	m.statusMsg = "Opened issue form"
}
