// Package watcher implements recipe file watching with debounced events.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/conspect/conspect/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// DefaultDebounceWindow coalesces editor save bursts into one event.
const DefaultDebounceWindow = 250 * time.Millisecond

// Watcher implements recipe directory watching using fsnotify. Raw events
// are debounced and filtered through a content tracker so that rewrites
// with identical bytes do not surface.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	tracker   *ContentTracker
	logger    ports.Logger
	events    chan ports.WatchEvent

	// latest raw operation per path, consulted when the debouncer fires
	mu     sync.Mutex
	latest map[string]ports.WatchOp

	// guards events against sends after close; the debouncer fires from
	// its own goroutine and may outlive processEvents briefly
	sendMu sync.Mutex
	closed bool
}

// NewWatcher creates a new recipe watcher.
func NewWatcher(logger ports.Logger, tracker *ContentTracker) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		tracker:   tracker,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		latest:    make(map[string]ports.WatchOp),
	}
	w.debouncer = NewDebouncer(DefaultDebounceWindow, w.emit)
	return w, nil
}

// Start begins watching the directory containing the recipe at path. The
// watch is not recursive; a recipe lives at a fixed path and its directory
// is all that matters. The current content of path becomes the tracker
// baseline so a rewrite with identical bytes never surfaces as an event.
func (w *Watcher) Start(ctx context.Context, path string) error {
	if err := w.fsWatcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	w.tracker.Prime(path)

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.debouncer.Flush()
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.closeEvents()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			op, relevant := convertOp(event.Op)
			if !relevant {
				continue
			}

			w.mu.Lock()
			w.latest[event.Name] = op
			w.mu.Unlock()

			w.debouncer.Add(event.Name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: file system error: " + err.Error())
		}
	}
}

// emit is the debouncer callback. It drops paths whose content hash is
// unchanged and forwards the rest as watch events.
func (w *Watcher) emit(paths []string) {
	now := time.Now()

	for _, path := range paths {
		w.mu.Lock()
		op := w.latest[path]
		delete(w.latest, path)
		w.mu.Unlock()

		if op == ports.OpWrite && !w.tracker.Changed(path) {
			continue
		}

		w.send(ports.WatchEvent{
			Path:      path,
			Operation: op,
			At:        now,
		})
	}
}

func (w *Watcher) send(event ports.WatchEvent) {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()

	if w.closed {
		return
	}

	// Drop rather than block when the consumer has fallen behind.
	select {
	case w.events <- event:
	default:
	}
}

func (w *Watcher) closeEvents() {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()

	w.closed = true
	close(w.events)
}

// convertOp maps an fsnotify operation onto the watch vocabulary.
// Chmod-only events carry no content signal and are dropped.
func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	default:
		return 0, false
	}
}
