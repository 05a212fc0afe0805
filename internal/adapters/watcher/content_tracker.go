package watcher

import (
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/conspect/conspect/internal/core/domain"
)

// ContentTracker remembers a content hash per path so the watcher can
// suppress write events that did not actually change any bytes. Editors
// and formatters rewrite files in place more often than they change them.
type ContentTracker struct {
	mu   sync.Mutex
	sums map[domain.InternedString]uint64
}

// NewContentTracker creates an empty tracker.
func NewContentTracker() *ContentTracker {
	return &ContentTracker{
		sums: make(map[domain.InternedString]uint64),
	}
}

// Prime records the current content hash of path as the baseline.
// Unreadable paths are ignored; the next write will surface as changed.
func (t *ContentTracker) Prime(path string) {
	sum, err := hashFile(path)
	if err != nil {
		return
	}

	t.mu.Lock()
	t.sums[domain.NewInternedString(path)] = sum
	t.mu.Unlock()
}

// Changed reports whether the content of path differs from the last
// recorded hash, and records the new hash. Unknown and unreadable paths
// report true so callers never miss a real change.
func (t *ContentTracker) Changed(path string) bool {
	key := domain.NewInternedString(path)

	sum, err := hashFile(path)
	if err != nil {
		t.mu.Lock()
		delete(t.sums, key)
		t.mu.Unlock()
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	previous, seen := t.sums[key]
	t.sums[key] = sum

	return !seen || previous != sum
}

func hashFile(path string) (uint64, error) {
	// #nosec G304 -- path comes from the file system watcher
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
