package sync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")

	w, err := NewWatcher(path, dates.DefaultDisplayLayout)
	require.NoError(t, err)
	require.NotNil(t, w.watcher)
	assert.Equal(t, path, w.Path())
	assert.NotNil(t, w.Changes())

	w.Stop()
	w.Stop()
}

func TestWatcherDeliversChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: 2024-01-10\nend: 2024-01-15\n"), 0644))

	w, err := NewWatcher(path, dates.DefaultDisplayLayout)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("start: 2024-02-01\nend: 2024-02-03\n"), 0644))

	select {
	case ev := <-w.Changes():
		require.NoError(t, ev.Err)
		assert.Equal(t, path, ev.Path)
		assert.True(t, ev.Range.Start.SameDay(dates.Noon(2024, 2, 1, time.Local)))
		assert.True(t, ev.Range.End.SameDay(dates.Noon(2024, 2, 3, time.Local)))
	case <-time.After(3 * time.Second):
		t.Fatal("no change delivered")
	}
}

func TestWatcherReportsBadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: 2024-01-10\n"), 0644))

	w, err := NewWatcher(path, dates.DefaultDisplayLayout)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("start: someday\n"), 0644))

	select {
	case ev := <-w.Changes():
		assert.ErrorIs(t, ev.Err, dates.ErrInvalidFormat)
	case <-time.After(3 * time.Second):
		t.Fatal("no change delivered")
	}
}
