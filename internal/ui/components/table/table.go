// Package table wraps bubble-table with the application theme.
package table

import (
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/docseek/internal/config"
)

// maxColumnWidth caps any single column
const maxColumnWidth = 40

// New creates a themed bubble-table (no background)
func New(cols []bbtable.Column, theme config.Theme) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextPrimary)).
			BorderForeground(lipgloss.Color(theme.BorderColor))).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Highlight)).
			Background(lipgloss.Color(theme.SelectedBg)).
			Bold(true)).
		Focused(true).
		BorderRounded()
}

// Column describes one column of a FromRows table
type Column struct {
	Key   string
	Title string
	// Flex columns share whatever width the fixed ones leave over
	Flex bool
}

// FromRows builds a table sized to fit within totalWidth. Each row maps a
// column key to its cell value.
func FromRows(cols []Column, rows []bbtable.RowData, totalWidth int, theme config.Theme) bbtable.Model {
	widths := calculateColumnWidths(cols, rows)

	// borders: one per column plus the closing one
	used := len(cols) + 1
	flex := 0
	for _, c := range cols {
		if c.Flex {
			flex++
			continue
		}
		used += widths[c.Key]
	}
	if flex > 0 {
		share := (totalWidth - used) / flex
		if share < 8 {
			share = 8
		}
		for _, c := range cols {
			if c.Flex {
				widths[c.Key] = share
			}
		}
	}

	var tcols []bbtable.Column
	for _, c := range cols {
		tcols = append(tcols, bbtable.NewColumn(c.Key, c.Title, widths[c.Key]))
	}

	var trows []bbtable.Row
	for _, r := range rows {
		trows = append(trows, bbtable.NewRow(r))
	}

	return New(tcols, theme).
		WithRows(trows).
		WithPageSize(10)
}

func calculateColumnWidths(cols []Column, rows []bbtable.RowData) map[string]int {
	widths := make(map[string]int)
	for _, c := range cols {
		widths[c.Key] = lipgloss.Width(c.Title)
	}

	for _, row := range rows {
		for _, c := range cols {
			s, ok := row[c.Key].(string)
			if !ok {
				continue
			}
			if w := lipgloss.Width(s); w > widths[c.Key] {
				widths[c.Key] = w
			}
		}
	}

	// Add padding
	for k := range widths {
		widths[k] += 2
		if widths[k] > maxColumnWidth {
			widths[k] = maxColumnWidth
		}
	}

	return widths
}
