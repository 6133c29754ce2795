// internal/history/entry.go
package history

import "time"

// Entry is one completed search: the query and the result the user picked
type Entry struct {
	ID           int64
	Query        string
	SelectedPath string
	SelectedName string
	HitCount     int
	SearchedAt   time.Time
}

// QueryPreview returns a truncated version of the query
func (e *Entry) QueryPreview(maxLen int) string {
	q := []rune(e.Query)
	if maxLen > 3 && len(q) > maxLen {
		return string(q[:maxLen-3]) + "..."
	}
	return e.Query
}
