// Package dispose provides the aggregate cleanup token threaded through a
// render call.
//
// A Handle collects teardown callbacks (stream unsubscriptions, ref cleanups)
// and child handles. Releasing a handle runs every callback exactly once and
// releases its children recursively. Handles form a tree that mirrors stream
// re-renders: each emission renders under a fresh child that is released when
// the next emission replaces it.
package dispose

import (
	"sync"
	"sync/atomic"
)

var idCounter uint64

// Handle is an aggregate cancellation token. The zero value is not usable;
// create handles with New or NewChild.
type Handle struct {
	id uint64

	parent *Handle

	children   []*Handle
	childrenMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	closed atomic.Bool
}

// New creates a root Handle.
func New() *Handle {
	return &Handle{id: atomic.AddUint64(&idCounter, 1)}
}

// NewChild creates a Handle that is released together with h. If h is
// already released the child is returned released.
func (h *Handle) NewChild() *Handle {
	c := New()
	c.parent = h

	h.childrenMu.Lock()
	if h.closed.Load() {
		h.childrenMu.Unlock()
		c.closed.Store(true)
		return c
	}
	h.children = append(h.children, c)
	h.childrenMu.Unlock()

	return c
}

// ID returns the unique identifier for this Handle.
func (h *Handle) ID() uint64 {
	return h.id
}

// Closed reports whether the handle has been released.
func (h *Handle) Closed() bool {
	return h.closed.Load()
}

// Add registers a cleanup callback. Adding to a released handle runs fn
// immediately.
func (h *Handle) Add(fn func()) {
	if fn == nil {
		return
	}

	h.cleanupsMu.Lock()
	if h.closed.Load() {
		h.cleanupsMu.Unlock()
		fn()
		return
	}
	h.cleanups = append(h.cleanups, fn)
	h.cleanupsMu.Unlock()
}

// Len returns the number of pending cleanups and live children.
func (h *Handle) Len() int {
	h.cleanupsMu.Lock()
	n := len(h.cleanups)
	h.cleanupsMu.Unlock()

	h.childrenMu.Lock()
	n += len(h.children)
	h.childrenMu.Unlock()
	return n
}

func (h *Handle) removeChild(child *Handle) {
	h.childrenMu.Lock()
	defer h.childrenMu.Unlock()

	for i, c := range h.children {
		if c == child {
			h.children = append(h.children[:i], h.children[i+1:]...)
			return
		}
	}
}

// Unsubscribe releases the handle: children first, newest to oldest, then
// cleanups newest to oldest. Calling it again is a no-op.
func (h *Handle) Unsubscribe() {
	if h.closed.Swap(true) {
		return
	}

	if h.parent != nil {
		h.parent.removeChild(h)
	}

	h.childrenMu.Lock()
	children := h.children
	h.children = nil
	h.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Unsubscribe()
	}

	h.cleanupsMu.Lock()
	cleanups := h.cleanups
	h.cleanups = nil
	h.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
