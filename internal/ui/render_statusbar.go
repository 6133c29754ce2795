package ui

import (
	"net/url"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/docseek/internal/config"
)

func (m Model) renderStatusBar() string {
	var parts []string

	// 1. Backend
	badge := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(AccentColor()).
		Foreground(BgPrimary())
	parts = append(parts, badge.Render(m.config.Search.Backend))
	parts = append(parts, lipgloss.NewStyle().Padding(0, 1).Foreground(TextSecondary()).Background(SelectedBg()).Render(m.backendInfo()))

	// 2. Loading indicator
	if m.loading {
		parts = append(parts, lipgloss.NewStyle().Padding(0, 1).Background(SelectedBg()).Render(m.spinner.View()+" Searching"))
	}

	// 3. Status message
	if m.statusMsg != "" {
		parts = append(parts, SystemMessageStyle.Background(SelectedBg()).Padding(0, 1).Render(m.statusMsg))
	}

	// 4. Error indicator
	if m.errorMsg != "" {
		errorStyle := lipgloss.NewStyle().Background(ErrorColor()).Foreground(TextPrimary()).Padding(0, 1)
		parts = append(parts, errorStyle.Render("⚠ "+truncate(m.errorMsg, m.width/2)))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return StatusBarStyle.Width(m.width).MaxWidth(m.width).Render(content)
}

// backendInfo describes where searches go
func (m Model) backendInfo() string {
	switch m.config.Search.Backend {
	case config.BackendLocal:
		return filepath.Base(m.config.Search.IndexPath)
	default:
		if u, err := url.Parse(m.config.Search.Endpoint); err == nil && u.Host != "" {
			return u.Host
		}
		return m.config.Search.Endpoint
	}
}
