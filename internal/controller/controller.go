// Package controller holds the search dialog state machine: open state, the
// submitted query, fetched results and the keyboard/mouse highlighted hit.
// It performs no I/O itself; the UI runs the Requests it hands out and feeds
// the answers back through Apply.
package controller

import (
	"log"
	"net/url"
	"strings"

	"github.com/nhath/docseek/internal/highlight"
	"github.com/nhath/docseek/internal/search"
)

// None is the ActiveIndex sentinel for "nothing highlighted"
const None = -1

// Router is the navigation collaborator
type Router interface {
	// Navigate moves to a result path
	Navigate(path string) error
	// Preload warms a candidate destination; it must not block
	Preload(u *url.URL)
}

// Request is a search the UI should run. Seq tags the answer so stale
// arrivals can be told apart from the latest submission.
type Request struct {
	Seq  uint64
	Term string
	Mode search.Mode
}

// Options configures a Controller
type Options struct {
	// Wrap makes Next/Prev wrap around at the ends instead of clamping
	Wrap bool
	// Origin resolves hit paths into absolute URLs for preloading
	Origin *url.URL
	// FeedbackURL is the issue tracker "new issue" URL for the no-results link
	FeedbackURL string
	// ToggleKeys open and close the dialog from anywhere
	ToggleKeys []string
	Mode       search.Mode
	Router     Router
}

// Controller is the search interaction controller
type Controller struct {
	opts Options

	open    bool
	query   string
	pattern *highlight.Pattern
	seq     uint64

	results search.Grouped
	flat    []search.Hit
	active  int
}

// New creates a closed controller with no query
func New(opts Options) *Controller {
	if opts.Mode == "" {
		opts.Mode = search.ModeFulltext
	}
	if len(opts.ToggleKeys) == 0 {
		opts.ToggleKeys = []string{"ctrl+k"}
	}
	return &Controller{
		opts:    opts,
		pattern: highlight.Compile(""),
		active:  None,
	}
}

// Mount registers the global open/close shortcut on w. The returned release
// function must be called on teardown.
func (c *Controller) Mount(w *Window) (release func()) {
	return w.AddKeyListener(func(key string) bool {
		for _, k := range c.opts.ToggleKeys {
			if k == key {
				c.Toggle()
				return true
			}
		}
		return false
	})
}

// IsOpen reports the dialog state
func (c *Controller) IsOpen() bool { return c.open }

// Query returns the last submitted query
func (c *Controller) Query() string { return c.query }

// Pattern returns the highlight pattern for the current query
func (c *Controller) Pattern() *highlight.Pattern { return c.pattern }

// Results returns the grouped results of the latest applied search
func (c *Controller) Results() search.Grouped { return c.results }

// Hits returns the flattened results
func (c *Controller) Hits() []search.Hit { return c.flat }

// Active returns the highlighted index into Hits, or None
func (c *Controller) Active() int { return c.active }

// ActiveHit returns the highlighted hit, if any
func (c *Controller) ActiveHit() (search.Hit, bool) {
	if c.active < 0 || c.active >= len(c.flat) {
		return search.Hit{}, false
	}
	return c.flat[c.active], true
}

// Toggle flips the dialog state; closing clears the query
func (c *Controller) Toggle() {
	c.SetOpen(!c.open)
}

// Open shows the dialog. It never starts a search.
func (c *Controller) Open() {
	c.SetOpen(true)
}

// Close hides the dialog and clears the query
func (c *Controller) Close() {
	c.SetOpen(false)
}

// SetOpen applies a dialog state change
func (c *Controller) SetOpen(open bool) {
	if !open {
		c.SetQuery("")
	}
	c.open = open
}

// SetQuery submits q. It returns the request to run, or nil when q is empty,
// in which case the results go back to the not-searched state. Every call
// supersedes the requests handed out before it.
func (c *Controller) SetQuery(q string) *Request {
	c.seq++
	if q != c.query {
		c.query = q
		c.pattern = highlight.Compile(q)
	}
	if q == "" {
		c.results = search.Grouped{}
		c.flat = nil
		c.active = None
		return nil
	}
	return &Request{Seq: c.seq, Term: q, Mode: c.opts.Mode}
}

// Current reports whether seq is the latest submission
func (c *Controller) Current(seq uint64) bool {
	return seq == c.seq && c.query != ""
}

// Apply commits the answer for request seq. Answers for superseded requests
// are dropped and Apply returns false. A nil response counts as zero hits.
func (c *Controller) Apply(seq uint64, resp *search.Response) bool {
	if !c.Current(seq) {
		log.Printf("controller: dropping stale results for seq %d (latest %d)", seq, c.seq)
		return false
	}
	var hits []search.Hit
	if resp != nil {
		hits = resp.Hits
	}
	c.results = search.GroupHits(hits)
	c.flat = c.results.Flatten()
	c.setActive(0, true)
	return true
}

// Focus is called when the input gains focus
func (c *Controller) Focus() {
	c.setActive(0, false)
}

// Blur is called when the input loses focus
func (c *Controller) Blur() {
	c.setActive(None, false)
}

// Next moves the highlight down one hit
func (c *Controller) Next() {
	n := len(c.flat)
	if n == 0 {
		return
	}
	switch {
	case c.active == None:
		c.setActive(0, false)
	case c.active+1 < n:
		c.setActive(c.active+1, false)
	case c.opts.Wrap:
		c.setActive(0, false)
	}
}

// Prev moves the highlight up one hit
func (c *Controller) Prev() {
	n := len(c.flat)
	if n == 0 {
		return
	}
	switch {
	case c.active == None:
		c.setActive(n-1, false)
	case c.active > 0:
		c.setActive(c.active-1, false)
	case c.opts.Wrap:
		c.setActive(n-1, false)
	}
}

// Hover highlights the item under the mouse
func (c *Controller) Hover(i int) {
	if i < 0 || i >= len(c.flat) {
		return
	}
	c.setActive(i, false)
}

// Select navigates to the highlighted hit and closes the dialog. It returns
// false without side effects when nothing is highlighted. The dialog closes
// even if the router fails; the error is returned for display.
func (c *Controller) Select() (search.Hit, bool, error) {
	hit, ok := c.ActiveHit()
	if !ok {
		return search.Hit{}, false, nil
	}
	var err error
	if c.opts.Router != nil {
		err = c.opts.Router.Navigate(hit.Path)
	}
	c.Close()
	return hit, true, err
}

// NoResults reports whether the "no results" affordance should show
func (c *Controller) NoResults() bool {
	return c.query != "" && c.results.Searched && len(c.results.Groups) == 0
}

// FeedbackLink returns the pre-filled issue link for the current query
func (c *Controller) FeedbackLink() string {
	return FeedbackLink(c.opts.FeedbackURL, c.query)
}

// FeedbackLink builds the "missing results" issue URL for query
func FeedbackLink(base, query string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "title=[Search]+Missing+results+for+query+%22" + url.QueryEscape(query) + "%22"
}

// Resolve turns a hit path into an absolute URL against the site origin
func (c *Controller) Resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	if c.opts.Origin == nil {
		return ref, nil
	}
	return c.opts.Origin.ResolveReference(ref), nil
}

func (c *Controller) setActive(i int, force bool) {
	if i != None && (i < 0 || i >= len(c.flat)) {
		i = None
	}
	if i == c.active && !force {
		return
	}
	c.active = i
	if i != None {
		c.preload(c.flat[i])
	}
}

func (c *Controller) preload(hit search.Hit) {
	if c.opts.Router == nil || hit.Path == "" {
		return
	}
	u, err := c.Resolve(hit.Path)
	if err != nil {
		log.Printf("controller: cannot resolve %q: %v", hit.Path, err)
		return
	}
	c.opts.Router.Preload(u)
}
