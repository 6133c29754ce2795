// internal/controller/window.go
package controller

import "sort"

// KeyListener receives a key name ("ctrl+k", "down", ...). Returning true
// consumes the key so the focused component never sees it.
type KeyListener func(key string) bool

// Window is the registry of window-level key listeners. It is owned by the
// UI event loop and is not safe for concurrent use.
type Window struct {
	next      int
	listeners map[int]KeyListener
}

// NewWindow creates an empty listener registry
func NewWindow() *Window {
	return &Window{listeners: make(map[int]KeyListener)}
}

// AddKeyListener registers fn and returns the function that removes it.
// Calling the returned function more than once is harmless.
func (w *Window) AddKeyListener(fn KeyListener) (remove func()) {
	id := w.next
	w.next++
	w.listeners[id] = fn
	return func() {
		delete(w.listeners, id)
	}
}

// DispatchKey offers key to every listener in registration order and reports
// whether any of them consumed it.
func (w *Window) DispatchKey(key string) bool {
	ids := make([]int, 0, len(w.listeners))
	for id := range w.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	handled := false
	for _, id := range ids {
		if fn, ok := w.listeners[id]; ok && fn(key) {
			handled = true
		}
	}
	return handled
}

// Len returns the number of registered listeners
func (w *Window) Len() int {
	return len(w.listeners)
}
