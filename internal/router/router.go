// Package router opens selected results and warms candidate pages.
package router

import (
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener launches an absolute URL somewhere the user can read it
type Opener func(target string) error

// Router resolves result paths against the site origin
type Router struct {
	origin   *url.URL
	open     Opener
	prefetch *Prefetcher
}

// New creates a router. A nil opener uses the platform browser; a nil
// prefetcher disables preloading.
func New(origin *url.URL, open Opener, prefetch *Prefetcher) *Router {
	if open == nil {
		open = BrowserOpener("")
	}
	return &Router{origin: origin, open: open, prefetch: prefetch}
}

// Navigate opens path
func (r *Router) Navigate(path string) error {
	target, err := r.resolve(path)
	if err != nil {
		return err
	}
	log.Printf("router: opening %s", target)
	if err := r.open(target.String()); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}

// Preload warms u in the background
func (r *Router) Preload(u *url.URL) {
	if r.prefetch == nil || u == nil {
		return
	}
	r.prefetch.Preload(u)
}

func (r *Router) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid result path %q: %w", path, err)
	}
	if r.origin == nil {
		return ref, nil
	}
	return r.origin.ResolveReference(ref), nil
}

// BrowserOpener runs command with the URL appended. An empty command picks
// the platform default (open, xdg-open, or rundll32 on Windows).
func BrowserOpener(command string) Opener {
	return func(target string) error {
		name, args := browserCommand(command)
		args = append(args, target)
		return exec.Command(name, args...).Start()
	}
}

func browserCommand(command string) (string, []string) {
	if fields := strings.Fields(command); len(fields) > 0 {
		return fields[0], fields[1:]
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
