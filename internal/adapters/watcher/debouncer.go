package watcher

import (
	"sync"
	"time"

	"github.com/conspect/conspect/internal/core/domain"
)

// Debouncer coalesces rapid file system events into one batched callback.
// Paths are interned so that editor save storms on the same file cost one
// map entry.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[domain.InternedString]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a debouncer with the given window and callback.
// The callback runs on the timer goroutine once per quiet window.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[domain.InternedString]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and restarts the quiet window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[domain.NewInternedString(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs when the window expires without new events.
func (d *Debouncer) fire() {
	paths := d.drain(true)
	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Flush triggers the callback immediately with all pending paths and blocks
// until it returns. If the timer has already fired, Flush lets that run
// complete instead of delivering the batch twice.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && !d.timer.Stop() {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	paths := d.drain(false)
	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// drain empties the pending set and returns it as a path slice.
func (d *Debouncer) drain(clearTimer bool) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if clearTimer {
		d.timer = nil
	}

	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path.String())
	}
	d.pending = make(map[domain.InternedString]struct{})

	return paths
}
