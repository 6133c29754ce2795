// internal/router/prefetch.go
package router

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultPrefetchEntries = 64
	maxPrefetchBody        = 2 << 20
)

// Page is a warmed destination
type Page struct {
	URL       string
	Status    int
	Body      []byte
	FetchedAt time.Time
}

// Prefetcher fetches pages in the background and keeps the most recent ones.
// Requests for a URL already cached or in flight are ignored.
type Prefetcher struct {
	client  *http.Client
	timeout time.Duration
	cache   *lru.Cache[string, Page]

	mu       sync.Mutex
	inflight map[string]bool
	wg       sync.WaitGroup
}

// NewPrefetcher creates a prefetcher holding up to size pages
func NewPrefetcher(client *http.Client, size int, timeout time.Duration) *Prefetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if size <= 0 {
		size = defaultPrefetchEntries
	}
	cache, err := lru.New[string, Page](size)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &Prefetcher{
		client:   client,
		timeout:  timeout,
		cache:    cache,
		inflight: make(map[string]bool),
	}
}

// Preload starts a fetch of u unless it is cached or already running
func (p *Prefetcher) Preload(u *url.URL) {
	key := u.String()
	if p.cache.Contains(key) {
		return
	}

	p.mu.Lock()
	if p.inflight[key] {
		p.mu.Unlock()
		return
	}
	p.inflight[key] = true
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			delete(p.inflight, key)
			p.mu.Unlock()
		}()

		page, err := p.fetch(key)
		if err != nil {
			log.Printf("prefetch: %s: %v", key, err)
			return
		}
		p.cache.Add(key, page)
	}()
}

// Get returns a warmed page
func (p *Prefetcher) Get(u *url.URL) (Page, bool) {
	return p.cache.Get(u.String())
}

// Len returns the number of cached pages
func (p *Prefetcher) Len() int {
	return p.cache.Len()
}

// Wait blocks until running fetches finish
func (p *Prefetcher) Wait() {
	p.wg.Wait()
}

func (p *Prefetcher) fetch(target string) (Page, error) {
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("Purpose", "prefetch")

	resp, err := p.client.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Page{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPrefetchBody))
	if err != nil {
		return Page{}, err
	}
	return Page{URL: target, Status: resp.StatusCode, Body: body, FetchedAt: time.Now()}, nil
}
