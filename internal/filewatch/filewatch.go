// Package filewatch reports changes to the local copy of the previewed
// file.
package filewatch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Kind is the kind of change.
type Kind int

const (
	// ContentChanged is sent once writes to the file have settled.
	ContentChanged Kind = iota + 1
	// MetadataChanged is sent for attribute changes.
	MetadataChanged
	// Removed is sent when the file is deleted or renamed away.
	Removed
)

func (k Kind) String() string {
	switch k {
	case ContentChanged:
		return "content"
	case MetadataChanged:
		return "metadata"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// Change is one reported change of the watched file.
type Change struct {
	Path string
	Kind Kind
}

// DefaultSettle is how long writes must pause before ContentChanged.
const DefaultSettle = 500 * time.Millisecond

// Watcher watches one file through its directory, so that editors
// replacing the file are seen too.
type Watcher struct {
	path   string
	settle time.Duration
	logger zerolog.Logger

	fs      *fsnotify.Watcher
	changes chan Change
	done    chan struct{}
	wg      sync.WaitGroup
}

// New starts watching path. settle <= 0 uses DefaultSettle.
func New(path string, settle time.Duration, logger zerolog.Logger) (*Watcher, error) {
	if settle <= 0 {
		settle = DefaultSettle
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		settle:  settle,
		logger:  logger,
		fs:      fs,
		changes: make(chan Change),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes delivers the changes. It is closed by Close.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	close(w.changes)
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			switch {
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				pending = false
				timer.Stop()
				w.emit(Removed)
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
				pending = true
				timer.Reset(w.settle)
			case ev.Has(fsnotify.Chmod):
				w.emit(MetadataChanged)
			}
		case <-timer.C:
			if pending {
				pending = false
				w.emit(ContentChanged)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("fsnotify watcher error")
		}
	}
}

func (w *Watcher) emit(k Kind) {
	w.logger.Debug().Stringer("kind", k).Str("path", w.path).Msg("file changed")
	select {
	case w.changes <- Change{Path: w.path, Kind: k}:
	case <-w.done:
	}
}
