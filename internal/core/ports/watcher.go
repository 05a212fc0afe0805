package ports

import (
	"context"
	"iter"
	"time"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// String returns the lower-case operation name.
func (op WatchOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
	// At is when the watcher observed the change.
	At time.Time
}

// Watcher defines the interface for watching recipe file changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the directory containing the recipe at path.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of debounced file system events.
	Events() iter.Seq[WatchEvent]
}
