// Package sync feeds externally edited ranges back into a running picker.
package sync

import (
	"fmt"
	"path/filepath"
	gosync "sync"
	"time"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/logger"
	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// SeedChange carries the re-read seed file, or the error reading it
type SeedChange struct {
	Path  string
	Range dates.Range
	Err   error
}

// Watcher watches one seed file for changes
type Watcher struct {
	watcher       *fsnotify.Watcher
	path          string
	displayLayout string
	changes       chan SeedChange
	done          chan struct{}

	mu            gosync.Mutex
	debounceTimer *time.Timer
	stopOnce      gosync.Once
}

// NewWatcher creates a watcher for the seed file at path
func NewWatcher(path, displayLayout string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seed path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:       fsWatcher,
		path:          abs,
		displayLayout: displayLayout,
		changes:       make(chan SeedChange, 10),
		done:          make(chan struct{}),
	}, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. The parent directory is watched so editors that
// replace the file on save are still seen.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		w.watcher.Close()
	})
}

// Changes returns the channel for seed change notifications
func (w *Watcher) Changes() <-chan SeedChange {
	return w.changes
}

// watch is the main event loop
func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.mu.Lock()
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("sync: watcher error", "error", err)
		}
	}
}

// reload re-reads the seed after the debounce window
func (w *Watcher) reload() {
	r, err := ReadSeed(w.path, w.displayLayout)
	if err != nil {
		logger.Warn("sync: failed to reload seed", "path", w.path, "error", err)
	} else {
		logger.Debug("sync: seed changed", "path", w.path, "range", r.String())
	}

	select {
	case w.changes <- SeedChange{Path: w.path, Range: r, Err: err}:
	case <-w.done:
	}
}
