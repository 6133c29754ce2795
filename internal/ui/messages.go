// internal/ui/messages.go
// Message types for the Bubble Tea Update cycle
package ui

import (
	"github.com/nhath/docseek/internal/history"
	"github.com/nhath/docseek/internal/search"
)

// DebounceMsg submits the input once typing has settled. Only the message
// carrying the latest ID does anything.
type DebounceMsg struct {
	ID int
}

// SearchResultMsg carries the answer to one search request
type SearchResultMsg struct {
	Seq  uint64
	Term string
	Resp *search.Response
	Err  error
}

// HistoryLoadedMsg sent when history loads from SQLite
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// HistorySavedMsg sent after a selection was recorded
type HistorySavedMsg struct {
	Err error
}
