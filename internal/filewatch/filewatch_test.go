package filewatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 5 * time.Second

func newWatched(t *testing.T) (string, *Watcher) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	w, err := New(path, 50*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return path, w
}

func next(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case c := <-w.Changes():
		return c
	case <-time.After(waitFor):
		t.Fatal("no change reported")
		return Change{}
	}
}

func TestWatcher_WritesSettleIntoOneChange(t *testing.T) {
	path, w := newWatched(t)

	for i := range 3 {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o600))
	}

	c := next(t, w)
	assert.Equal(t, ContentChanged, c.Kind)
	assert.Equal(t, path, c.Path)

	select {
	case extra := <-w.Changes():
		t.Fatalf("unexpected second change %v", extra.Kind)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_Removed(t *testing.T) {
	path, w := newWatched(t)

	require.NoError(t, os.Remove(path))

	assert.Equal(t, Removed, next(t, w).Kind)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	path, w := newWatched(t)

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.mp4"), []byte("x"), 0o600))
	require.NoError(t, os.Remove(path))

	assert.Equal(t, Removed, next(t, w).Kind, "the sibling write must not be reported")
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "clip.mp4"), 0, zerolog.Nop())
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "content", ContentChanged.String())
	assert.Equal(t, "metadata", MetadataChanged.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
