// internal/ui/model_helpers.go
// Small helper functions used across the UI layer
package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const minDialogWidth = 32

// matchKey returns true if the key message matches any of the provided key strings
func matchKey(msg tea.KeyMsg, keys []string) bool {
	keyStr := msg.String()
	for _, k := range keys {
		if k == keyStr {
			return true
		}
	}
	return false
}

// truncate cuts plain text s to at most width cells, ending in "…"
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// joinEnds lays left and right out on one line of width cells. The right
// part is dropped when both do not fit.
func joinEnds(left, right string, width int) string {
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	if lw+rw+1 > width {
		return left
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

// chunk hard-breaks s into pieces of at most width runes
func chunk(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	r := []rune(s)
	var out []string
	for len(r) > width {
		out = append(out, string(r[:width]))
		r = r[width:]
	}
	return append(out, string(r))
}

// dialogWidth is the configured dialog width fitted to the terminal
func (m Model) dialogWidth() int {
	w := m.config.UI.DialogWidth
	if m.width > 0 && w > m.width-4 {
		w = m.width - 4
	}
	if w < minDialogWidth {
		w = minDialogWidth
	}
	return w
}

// innerWidth is the usable width inside the dialog padding
func (m Model) innerWidth() int {
	return m.dialogWidth() - 2
}
