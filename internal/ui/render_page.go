package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const (
	triggerX = 2
	triggerY = 3
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	view := m.renderPage()
	if m.ctrl.IsOpen() {
		l := m.layoutDialog()
		view = overlay.Composite(l.box, view, overlay.Left, overlay.Top, l.x, l.y)
	}
	if m.showHistoryPopup {
		view = m.renderHistoryPopup(view)
	}
	if m.showHelpPopup {
		view = m.renderHelpPopup(view)
	}
	return view
}

// triggerButton is the page's search button
func (m Model) triggerButton() string {
	label := "Search"
	if len(m.config.Keys.Toggle) > 0 {
		label += "  " + FooterKeyStyle.Render(m.config.Keys.Toggle[0])
	}
	return TriggerStyle.Render(label)
}

// inTrigger reports whether a screen cell falls on the trigger button
func (m Model) inTrigger(x, y int) bool {
	b := m.triggerButton()
	return x >= triggerX && x < triggerX+lipgloss.Width(b) &&
		y >= triggerY && y < triggerY+lipgloss.Height(b)
}

// renderPage draws the page shell behind the dialog
func (m Model) renderPage() string {
	pad := strings.Repeat(" ", triggerX)
	var lines []string
	lines = append(lines, "")
	lines = append(lines, pad+PageTitleStyle.Render(m.config.Site.Title))
	lines = append(lines, "")
	for _, l := range strings.Split(m.triggerButton(), "\n") {
		lines = append(lines, pad+l)
	}
	lines = append(lines, "")

	hints := []string{"enter or click the button to search", "ctrl+r recent searches", "? help", "q quit"}
	lines = append(lines, pad+HintStyle.Render(strings.Join(hints, " · ")))

	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	if len(lines) > m.height-1 && m.height > 1 {
		lines = lines[:m.height-1]
	}
	lines = append(lines, m.renderStatusBar())
	return strings.Join(lines, "\n")
}
