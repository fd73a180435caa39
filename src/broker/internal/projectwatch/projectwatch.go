// Package projectwatch watches the project file on disk and warns when it
// changes underneath an attached session. The broker validates metadata
// against live object and variable lists, so an external save of the
// project is a signal that earlier validation results may be stale.
package projectwatch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const _debounceTimeout = 2 * time.Second

// Watcher observes one project file for external modifications.
type Watcher interface {
	// Watch starts watching the given project file path. Watching a new
	// path stops the previous one.
	Watch(path string) error
	// Close stops watching and releases the underlying notifier.
	Close() error
}

type watcher struct {
	logger *zap.SugaredLogger
	clock  clockwork.Clock

	// onStale is invoked once per change burst, after debouncing.
	onStale func(path string)

	mu       sync.Mutex
	notifier *fsnotify.Watcher
	path     string
	closer   chan struct{}
	done     chan struct{}

	debounceMu sync.Mutex
	timer      clockwork.Timer
}

// New returns a Watcher that logs a staleness warning per change burst.
// onStale may be nil.
func New(logger *zap.SugaredLogger, clock clockwork.Clock, onStale func(path string)) Watcher {
	return &watcher{
		logger:  logger,
		clock:   clock,
		onStale: onStale,
	}
}

func (w *watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.closeLocked(); err != nil {
		return err
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory rather than the file: the tool replaces the
	// project file on save, which would drop a direct file watch.
	if err := notifier.Add(filepath.Dir(path)); err != nil {
		notifier.Close()
		return err
	}

	w.notifier = notifier
	w.path = path
	w.closer = make(chan struct{})
	w.done = make(chan struct{})
	go w.handleChanges(notifier, path, w.closer, w.done)
	return nil
}

func (w *watcher) handleChanges(notifier *fsnotify.Watcher, path string, closer chan struct{}, done chan struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-notifier.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !strings.EqualFold(filepath.Clean(event.Name), filepath.Clean(path)) {
				continue
			}
			w.handleDebounce(path)
		case err, ok := <-notifier.Errors:
			if !ok {
				return
			}
			w.logger.Warnf("failure in project file watcher: %v", err)
		case <-closer:
			return
		}
	}
}

// handleDebounce collapses a burst of change events into one warning.
func (w *watcher) handleDebounce(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = w.clock.AfterFunc(_debounceTimeout, func() {
		w.logger.Warnf("project file %q changed on disk; object and variable names may be stale, re-run validation", path)
		if w.onStale != nil {
			w.onStale(path)
		}
	})
}

func (w *watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *watcher) closeLocked() error {
	if w.notifier == nil {
		return nil
	}
	close(w.closer)
	err := w.notifier.Close()
	<-w.done

	w.debounceMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.debounceMu.Unlock()

	w.notifier = nil
	return err
}
