package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conspect/conspect/internal/adapters/watcher"
	"github.com/conspect/conspect/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestContentTracker_UnknownPathIsChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.RecipeFileName)
	writeFile(t, path, "requires: [fmt/10.2.1]")

	tracker := watcher.NewContentTracker()
	assert.True(t, tracker.Changed(path))
}

func TestContentTracker_SameContentIsUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.RecipeFileName)
	writeFile(t, path, "requires: [fmt/10.2.1]")

	tracker := watcher.NewContentTracker()
	tracker.Prime(path)

	// Rewrite with identical bytes, as editors do on save.
	writeFile(t, path, "requires: [fmt/10.2.1]")
	assert.False(t, tracker.Changed(path))
}

func TestContentTracker_NewContentIsChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.RecipeFileName)
	writeFile(t, path, "requires: [fmt/10.2.1]")

	tracker := watcher.NewContentTracker()
	tracker.Prime(path)

	writeFile(t, path, "requires: [fmt/11.0.0]")
	assert.True(t, tracker.Changed(path))

	// The new content becomes the baseline.
	assert.False(t, tracker.Changed(path))
}

func TestContentTracker_UnreadablePathIsChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.RecipeFileName)
	writeFile(t, path, "requires: [fmt/10.2.1]")

	tracker := watcher.NewContentTracker()
	tracker.Prime(path)

	require.NoError(t, os.Remove(path))
	assert.True(t, tracker.Changed(path))

	// Recreating the file reports changed again; the entry was dropped.
	writeFile(t, path, "requires: [fmt/10.2.1]")
	assert.True(t, tracker.Changed(path))
}
