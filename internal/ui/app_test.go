package ui

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/docseek/internal/config"
	"github.com/nhath/docseek/internal/controller"
	"github.com/nhath/docseek/internal/history"
	"github.com/nhath/docseek/internal/search"
)

type fakeClient struct {
	mu    sync.Mutex
	calls []search.Params
	resp  map[string]*search.Response
	err   error
}

func (c *fakeClient) Search(_ context.Context, p search.Params) (*search.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, p)
	if c.err != nil {
		return nil, c.err
	}
	return c.resp[p.Term], nil
}

type fakeRouter struct {
	navigated []string
	preloaded []string
}

func (r *fakeRouter) Navigate(path string) error {
	r.navigated = append(r.navigated, path)
	return nil
}

func (r *fakeRouter) Preload(u *url.URL) {
	r.preloaded = append(r.preloaded, u.String())
}

func signalHits() *search.Response {
	return &search.Response{Hits: []search.Hit{
		{Title: "Intro", Content: "Signals are the cornerstone", Path: "/", Section: "getting-started"},
		{Title: "createSignal", Content: "Creates a signal", Path: "/docs/foo", Section: "api"},
		{Title: "Signal basics", Content: "Reading a signal", Path: "/quick-start", Section: "getting-started"},
	}}
}

type harness struct {
	t      *testing.T
	m      Model
	client *fakeClient
	router *fakeRouter
}

func newHarness(t *testing.T, store *history.Store) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Search.Endpoint = "https://search.example.com/v1/indexes/docs"
	cfg.UI.DebounceMs = 0

	h := &harness{
		t:      t,
		client: &fakeClient{resp: map[string]*search.Response{"sig": signalHits()}},
		router: &fakeRouter{},
	}
	h.m = NewModel(Deps{
		Config:  cfg,
		Client:  h.client,
		Router:  h.router,
		History: store,
		Window:  controller.NewWindow(),
	})
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) key(k tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: k})
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// submitTyped fires the debounce for whatever was typed and returns the
// search command it started.
func (h *harness) submitTyped() tea.Cmd {
	return h.send(DebounceMsg{ID: h.m.debounceID})
}

// collect runs cmd and every command batched inside it, returning the
// messages of the given type.
func collect[T any](cmd tea.Cmd) []T {
	var out []T
	if cmd == nil {
		return out
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, collect[T](c)...)
		}
	case T:
		out = append(out, msg)
	}
	return out
}

func (h *harness) search(q string) {
	h.t.Helper()
	h.typeText(q)
	results := collect[SearchResultMsg](h.submitTyped())
	require.Len(h.t, results, 1)
	h.send(results[0])
}

func TestToggleShortcut(t *testing.T) {
	h := newHarness(t, nil)

	h.key(tea.KeyCtrlK)
	assert.True(t, h.m.ctrl.IsOpen())
	assert.True(t, h.m.input.Focused())

	h.typeText("sig")
	h.key(tea.KeyCtrlK)
	assert.False(t, h.m.ctrl.IsOpen())
	assert.Equal(t, "", h.m.input.Value())
	assert.Equal(t, "", h.m.ctrl.Query())
}

func TestOpenDoesNotSearch(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	assert.Empty(t, h.client.calls)
	assert.Contains(t, h.m.View(), "Type to search")
}

func TestDebounceOnlyLatestSubmits(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)

	h.typeText("s")
	stale := h.m.debounceID
	h.typeText("ig")

	assert.Nil(t, h.send(DebounceMsg{ID: stale}))
	assert.Equal(t, "", h.m.ctrl.Query())

	results := collect[SearchResultMsg](h.submitTyped())
	require.Len(t, results, 1)
	assert.Equal(t, "sig", results[0].Term)
	require.Len(t, h.client.calls, 1)
	assert.Equal(t, search.ModeFulltext, h.client.calls[0].Mode)
	assert.Equal(t, 20, h.client.calls[0].Limit)
}

func TestResultsRenderGrouped(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	assert.False(t, h.m.loading)
	assert.Equal(t, 0, h.m.ctrl.Active())
	view := h.m.View()
	assert.Contains(t, view, "Getting Started")
	assert.Contains(t, view, "Api")
	assert.Contains(t, view, "3 results")
	assert.Less(t, strings.Index(view, "Getting Started"), strings.Index(view, "Api"))
}

func TestStaleResultIsIgnored(t *testing.T) {
	h := newHarness(t, nil)
	h.client.resp["s"] = &search.Response{Hits: []search.Hit{{Title: "Old", Path: "/old", Section: "misc"}}}
	h.key(tea.KeyCtrlK)

	h.typeText("s")
	first := collect[SearchResultMsg](h.submitTyped())
	h.typeText("ig")
	second := collect[SearchResultMsg](h.submitTyped())
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	h.send(second[0])
	h.send(first[0])
	require.Len(t, h.m.ctrl.Hits(), 3)
	assert.Equal(t, "Intro", h.m.ctrl.Hits()[0].Title)
}

func TestKeyboardNavigationWrapsAndSelects(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	// grouped order: Intro, Signal basics, createSignal
	h.key(tea.KeyDown)
	h.key(tea.KeyDown)
	assert.Equal(t, 2, h.m.ctrl.Active())
	h.key(tea.KeyDown)
	assert.Equal(t, 0, h.m.ctrl.Active())
	h.key(tea.KeyUp)
	assert.Equal(t, 2, h.m.ctrl.Active())

	h.key(tea.KeyEnter)
	assert.Equal(t, []string{"/docs/foo"}, h.router.navigated)
	assert.False(t, h.m.ctrl.IsOpen())
	assert.Equal(t, "", h.m.ctrl.Query())
	assert.Contains(t, h.m.statusMsg, "/docs/foo")
}

func TestEscapeCloses(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	h.key(tea.KeyEsc)
	assert.False(t, h.m.ctrl.IsOpen())
	assert.Empty(t, h.router.navigated)
	assert.NotContains(t, h.m.View(), "createSignal")
}

func TestNoResultsShowsFeedbackLink(t *testing.T) {
	h := newHarness(t, nil)
	h.client.resp["zzzzz"] = &search.Response{Hits: []search.Hit{}}
	h.key(tea.KeyCtrlK)
	h.search("zzzzz")

	require.True(t, h.m.ctrl.NoResults())
	view := h.m.View()
	assert.Contains(t, view, `No results for "zzzzz"`)
	assert.Contains(t, view, "Open an issue")

	l := h.m.layoutDialog()
	var linkLine = -1
	for _, z := range l.zones {
		if z.action == zoneFeedback {
			linkLine = z.line
			break
		}
	}
	require.NotEqual(t, -1, linkLine)
	cx, cy := l.contentOrigin()
	h.send(tea.MouseMsg{X: cx + 1, Y: cy + linkLine, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Len(t, h.router.navigated, 1)
	assert.Contains(t, h.router.navigated[0], "zzzzz")
}

func TestFocusToggleBlursSelection(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	h.key(tea.KeyTab)
	assert.False(t, h.m.input.Focused())
	assert.Equal(t, controller.None, h.m.ctrl.Active())

	// enter with nothing highlighted does nothing
	h.key(tea.KeyEnter)
	assert.True(t, h.m.ctrl.IsOpen())
	assert.Empty(t, h.router.navigated)

	h.key(tea.KeyTab)
	assert.True(t, h.m.input.Focused())
	assert.Equal(t, 0, h.m.ctrl.Active())
}

func TestClearResetsResults(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	h.key(tea.KeyCtrlU)
	assert.Equal(t, "", h.m.input.Value())
	assert.False(t, h.m.ctrl.Results().Searched)
	assert.Equal(t, controller.None, h.m.ctrl.Active())
	assert.Len(t, h.client.calls, 1)
}

func TestSearchErrorGoesToStatusLine(t *testing.T) {
	h := newHarness(t, nil)
	h.client.err = errors.New("search service returned 503")
	h.key(tea.KeyCtrlK)
	h.search("sig")

	assert.Equal(t, "search service returned 503", h.m.errorMsg)
	assert.False(t, h.m.loading)
	assert.Contains(t, h.m.View(), "503")
}

func TestMouseHoverAndClick(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	l := h.m.layoutDialog()
	cx, cy := l.contentOrigin()
	row := -1
	for i, hit := range l.hitAt {
		if hit == 1 {
			row = i
			break
		}
	}
	require.NotEqual(t, -1, row)

	h.send(tea.MouseMsg{X: cx + 3, Y: cy + row, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, h.m.ctrl.Active())
	assert.Contains(t, h.router.preloaded, "https://docs.solidjs.com/quick-start")

	h.send(tea.MouseMsg{X: cx + 3, Y: cy + row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []string{"/quick-start"}, h.router.navigated)
	assert.False(t, h.m.ctrl.IsOpen())
}

func TestClickOutsideCloses(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	h.send(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, h.m.ctrl.IsOpen())
	assert.Empty(t, h.router.navigated)
}

func TestClickTriggerOpens(t *testing.T) {
	h := newHarness(t, nil)
	h.send(tea.MouseMsg{X: triggerX + 1, Y: triggerY + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, h.m.ctrl.IsOpen())
}

func TestPreviewFollowsActiveHit(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	h.key(tea.KeyCtrlO)
	require.True(t, h.m.showPreview)
	assert.Equal(t, "/", h.m.previewFor)

	h.key(tea.KeyDown)
	assert.Equal(t, "/quick-start", h.m.previewFor)
	assert.Contains(t, h.m.View(), "┄")
}

func TestHelpPopup(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("?")
	require.True(t, h.m.showHelpPopup)
	assert.Contains(t, h.m.View(), "Keyboard Shortcuts")

	h.key(tea.KeyEsc)
	assert.False(t, h.m.showHelpPopup)
	assert.True(t, h.m.popupStack.IsEmpty())
}

func TestToggleClosesPopups(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("?")
	require.True(t, h.m.showHelpPopup)

	h.key(tea.KeyCtrlK)
	assert.True(t, h.m.ctrl.IsOpen())
	assert.False(t, h.m.showHelpPopup)
	assert.True(t, h.m.popupStack.IsEmpty())

	h.typeText("sig")
	assert.Equal(t, "sig", h.m.input.Value())
}

func TestToggleClosesHistoryPopup(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	h := newHarness(t, store)
	for _, msg := range collect[HistoryLoadedMsg](h.key(tea.KeyCtrlR)) {
		h.send(msg)
	}
	require.True(t, h.m.showHistoryPopup)

	h.key(tea.KeyCtrlK)
	assert.True(t, h.m.ctrl.IsOpen())
	assert.False(t, h.m.showHistoryPopup)

	h.typeText("sig")
	assert.Equal(t, "sig", h.m.input.Value())
}

func TestQuitOnlyFromPage(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tea.KeyCtrlK)
	h.typeText("q")
	assert.Equal(t, "q", h.m.input.Value())
	h.key(tea.KeyEsc)

	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestSelectionIsRecordedAndRerun(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	h := newHarness(t, store)
	h.key(tea.KeyCtrlK)
	h.search("sig")

	saved := collect[HistorySavedMsg](h.key(tea.KeyEnter))
	require.Len(t, saved, 1)
	require.NoError(t, saved[0].Err)

	entries, err := store.List(10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sig", entries[0].Query)
	assert.Equal(t, "/", entries[0].SelectedPath)
	assert.Equal(t, 3, entries[0].HitCount)

	loaded := collect[HistoryLoadedMsg](h.key(tea.KeyCtrlR))
	require.True(t, h.m.showHistoryPopup)
	require.Len(t, loaded, 1)
	h.send(loaded[0])
	assert.Contains(t, h.m.View(), "Recent searches")

	results := collect[SearchResultMsg](h.key(tea.KeyEnter))
	require.Len(t, results, 1)
	assert.False(t, h.m.showHistoryPopup)
	assert.True(t, h.m.ctrl.IsOpen())
	assert.Equal(t, "sig", h.m.input.Value())

	h.send(results[0])
	assert.Len(t, h.m.ctrl.Hits(), 3)
}

func TestHistoryDisabledWithoutStore(t *testing.T) {
	h := newHarness(t, nil)
	assert.Nil(t, h.key(tea.KeyCtrlR))
	assert.False(t, h.m.showHistoryPopup)
	assert.Equal(t, "History is disabled", h.m.statusMsg)
}

func TestReleaseRemovesShortcut(t *testing.T) {
	window := controller.NewWindow()
	cfg := config.DefaultConfig()
	m := NewModel(Deps{Config: cfg, Window: window})
	assert.Equal(t, 1, window.Len())

	m.Release()
	m.Release()
	assert.Equal(t, 0, window.Len())
}
