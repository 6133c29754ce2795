package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/nhath/docseek/internal/config"
	"github.com/nhath/docseek/internal/history"
	eztable "github.com/nhath/docseek/internal/ui/components/table"
)

const (
	colQuery  = "query"
	colOpened = "opened"
	colHits   = "hits"
	colWhen   = "when"
)

var historyColumns = []eztable.Column{
	{Key: colQuery, Title: "Query"},
	{Key: colOpened, Title: "Opened", Flex: true},
	{Key: colHits, Title: "Hits"},
	{Key: colWhen, Title: "When"},
}

// newHistoryTable builds the recent-searches table
func newHistoryTable(entries []history.Entry, width int, theme config.Theme) bbtable.Model {
	return newHistoryTableAt(entries, width, theme, time.Now())
}

func newHistoryTableAt(entries []history.Entry, width int, theme config.Theme, now time.Time) bbtable.Model {
	rows := make([]bbtable.RowData, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		opened := e.SelectedName
		if opened == "" {
			opened = e.SelectedPath
		}
		rows = append(rows, bbtable.RowData{
			colQuery:  e.QueryPreview(30),
			colOpened: opened,
			colHits:   fmt.Sprintf("%d", e.HitCount),
			colWhen:   relativeTime(e.SearchedAt, now),
			// full query for re-running, not displayed
			"_query": e.Query,
		})
	}
	return eztable.FromRows(historyColumns, rows, width-6, theme)
}

// highlightedQuery returns the full query of the selected row
func highlightedQuery(t bbtable.Model) (string, bool) {
	if t.TotalRows() == 0 {
		return "", false
	}
	q, ok := t.HighlightedRow().Data["_query"].(string)
	return q, ok && q != ""
}

// relativeTime renders a coarse "how long ago"
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Local().Format("Jan 2")
}

func (m Model) renderHistoryPopup(main string) string {
	var content strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(AccentColor()).Render("Recent searches")
	content.WriteString(title)
	content.WriteString("\n\n")

	if len(m.historyEntries) == 0 {
		content.WriteString(HintStyle.Render("Nothing yet. Searches you open a result from show up here."))
	} else {
		content.WriteString(m.historyTable.View())
	}
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Faint(true).Render("enter to search again · d to forget · esc to close"))

	popupBox := PopupStyle.
		Width(m.dialogWidth()).
		MaxHeight(m.height - 2).
		Background(PopupBg()).
		Render(content.String())

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}
