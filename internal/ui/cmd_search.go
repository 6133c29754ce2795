package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/docseek/internal/controller"
	"github.com/nhath/docseek/internal/search"
)

// searchCmd runs req off the event loop. The answer carries req.Seq so a
// late arrival for an older query can be recognised and dropped.
func (m Model) searchCmd(req *controller.Request) tea.Cmd {
	client := m.client
	limit := m.config.Search.Limit
	timeout := m.config.Search.Timeout()
	return func() tea.Msg {
		if client == nil {
			return SearchResultMsg{Seq: req.Seq, Term: req.Term}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Search(ctx, search.Params{Term: req.Term, Mode: req.Mode, Limit: limit})
		return SearchResultMsg{Seq: req.Seq, Term: req.Term, Resp: resp, Err: err}
	}
}
