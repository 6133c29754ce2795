package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhath/docseek/internal/controller"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "createSignal", truncate("createSignal", 20))
	assert.Equal(t, "creat…", truncate("createSignal", 6))
	assert.Equal(t, "", truncate("createSignal", 0))
}

func TestJoinEnds(t *testing.T) {
	assert.Equal(t, "left     right", joinEnds("left", "right", 14))
	assert.Equal(t, "left", joinEnds("left", "right", 9))
}

func TestChunk(t *testing.T) {
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, chunk("abcdefghij", 4))
	assert.Equal(t, []string{"ab"}, chunk("ab", 4))
}

func TestVisibleLinesKeepsActiveOnScreen(t *testing.T) {
	var lines []bodyLine
	for i := 0; i < 10; i++ {
		lines = append(lines, bodyLine{hit: i})
	}

	assert.Len(t, visibleLines(lines, 0, 20), 10)

	win := visibleLines(lines, 2, 4)
	assert.Equal(t, 0, win[0].hit)

	win = visibleLines(lines, 7, 4)
	assert.Equal(t, 4, win[0].hit)
	assert.Equal(t, 7, win[3].hit)

	win = visibleLines(lines, controller.None, 4)
	assert.Equal(t, 0, win[0].hit)
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", relativeTime(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", relativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", relativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", relativeTime(now.Add(-49*time.Hour), now))
}

func TestPopupStackClosesTopFirst(t *testing.T) {
	m := &Model{showHelpPopup: true, showHistoryPopup: true}
	s := NewPopupStack()
	s.Push(popupHistory, func(m *Model) { m.showHistoryPopup = false })
	s.Push(popupHelp, func(m *Model) { m.showHelpPopup = false })
	assert.Equal(t, popupHelp, s.TopName())

	assert.True(t, s.CloseTop(m))
	assert.False(t, m.showHelpPopup)
	assert.True(t, m.showHistoryPopup)

	// re-pushing moves an entry instead of duplicating it
	s.Push(popupHistory, func(m *Model) { m.showHistoryPopup = false })
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.CloseTop(m))
	assert.False(t, m.showHistoryPopup)
	assert.False(t, s.CloseTop(m))
}
