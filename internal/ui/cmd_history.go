package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/docseek/internal/history"
	"github.com/nhath/docseek/internal/search"
)

// loadHistoryCmd loads recent searches from SQLite
func (m Model) loadHistoryCmd() tea.Cmd {
	store := m.historyStore
	limit := m.config.UI.HistoryLimit
	return func() tea.Msg {
		entries, err := store.Recent(limit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

// recordCmd stores a completed search
func (m Model) recordCmd(query string, hit search.Hit, hitCount int) tea.Cmd {
	store := m.historyStore
	if store == nil || query == "" {
		return nil
	}
	entry := &history.Entry{
		Query:        query,
		SelectedPath: hit.Path,
		SelectedName: hit.Title,
		HitCount:     hitCount,
		SearchedAt:   time.Now(),
	}
	return func() tea.Msg {
		return HistorySavedMsg{Err: store.Add(entry)}
	}
}

// forgetQueryCmd removes every entry for query and reloads the list
func (m Model) forgetQueryCmd(query string) tea.Cmd {
	store := m.historyStore
	limit := m.config.UI.HistoryLimit
	return func() tea.Msg {
		if _, err := store.DeleteQuery(query); err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		entries, err := store.Recent(limit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}
