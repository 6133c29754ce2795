package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) renderHelpPopup(main string) string {
	var content strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(AccentColor()).Render("Keyboard Shortcuts")
	content.WriteString(title)
	content.WriteString("\n\n")

	keys := m.config.Keys

	section := func(name string, bindings []struct{ key, desc string }) {
		header := lipgloss.NewStyle().Bold(true).Foreground(HighlightColor()).Render(name)
		content.WriteString(header + "\n")
		for _, b := range bindings {
			keyStyle := lipgloss.NewStyle().Foreground(AccentColor()).Width(15)
			descStyle := lipgloss.NewStyle().Foreground(TextSecondary())
			content.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(b.key), descStyle.Render(b.desc)))
		}
		content.WriteString("\n")
	}

	section("Anywhere", []struct{ key, desc string }{
		{strings.Join(keys.Toggle, "/"), "Open or close search"},
		{strings.Join(keys.History, "/"), "Recent searches"},
		{strings.Join(keys.Quit, "/"), "Quit"},
	})

	section("Search dialog", []struct{ key, desc string }{
		{strings.Join(keys.Down, "/"), "Next result"},
		{strings.Join(keys.Up, "/"), "Previous result"},
		{strings.Join(keys.Select, "/"), "Open result"},
		{strings.Join(keys.Focus, "/"), "Focus / blur input"},
		{strings.Join(keys.Clear, "/"), "Clear query"},
		{strings.Join(keys.Preview, "/"), "Toggle preview"},
		{"pgup/pgdown", "Scroll preview"},
		{strings.Join(keys.Close, "/"), "Close"},
	})

	section("Mouse", []struct{ key, desc string }{
		{"hover", "Highlight result"},
		{"click", "Open result"},
		{"click outside", "Close"},
	})

	content.WriteString(lipgloss.NewStyle().Faint(true).Render("Press Esc or q to close"))

	popupBox := PopupStyle.
		Width(50).
		MaxHeight(m.height - 2).
		Background(PopupBg()).
		Render(content.String())

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}
