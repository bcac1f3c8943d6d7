package scan

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ///////////////////////////////////////////////
// Watcher
// ///////////////////////////////////////////////

// Watcher reports changes to a fixed set of files using fsnotify with a
// polling fallback. It watches the parent directories rather than the files
// so editors that save by rename are still seen.
type Watcher struct {
	// files is the set of cleaned absolute paths being monitored.
	files map[string]struct{}
	// events delivers a signal each time a watched file changes.
	// The channel is buffered to 1 so back-to-back writes coalesce.
	events chan struct{}
	// done is closed by [Watcher.Close] to signal goroutines to exit.
	done chan struct{}
	// mu guards fsw, which the event loop drops when falling back to polling.
	mu sync.Mutex
	// fsw is the underlying fsnotify watcher; nil when polling.
	fsw *fsnotify.Watcher
	// once ensures [Watcher.Close] is idempotent.
	once sync.Once
	// polling is true when the watcher has fallen back to stat-based polling.
	polling atomic.Bool
	// pollInterval is the duration between stat passes in polling mode.
	pollInterval time.Duration
}

// NewWatcher creates a Watcher for the given local files. pollInterval is
// used only if fsnotify is unavailable.
func NewWatcher(paths []string, pollInterval time.Duration) (*Watcher, error) {
	w, err := newWatcher(paths, pollInterval)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Info("fsnotify unavailable, falling back to polling", "error", err)
		w.startPolling()
		return w, nil
	}
	for _, dir := range w.dirs() {
		if err := fsw.Add(dir); err != nil {
			slog.Info("cannot watch directory, falling back to polling", "path", dir, "error", err)
			fsw.Close()
			w.startPolling()
			return w, nil
		}
	}

	w.fsw = fsw
	go w.watch(fsw)
	return w, nil
}

// newWatcher builds an idle Watcher with the path set resolved.
func newWatcher(paths []string, pollInterval time.Duration) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("watch: no files given")
	}
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	w := &Watcher{
		files:        make(map[string]struct{}, len(paths)),
		events:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		pollInterval: pollInterval,
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		w.files[filepath.Clean(abs)] = struct{}{}
	}
	return w, nil
}

// dirs returns the distinct parent directories of the watched files.
func (w *Watcher) dirs() []string {
	seen := make(map[string]bool)
	var out []string
	for f := range w.files {
		d := filepath.Dir(f)
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// watched reports whether an fsnotify event name is one of the files.
func (w *Watcher) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	_, ok := w.files[filepath.Clean(abs)]
	return ok
}

// Polling reports whether the watcher is using polling instead of fsnotify.
func (w *Watcher) Polling() bool {
	return w.polling.Load()
}

// Events returns a channel that receives a signal when a watched file changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.fsw != nil {
			if closeErr := w.fsw.Close(); closeErr != nil {
				err = fmt.Errorf("closing fsnotify watcher: %w", closeErr)
			}
			w.fsw = nil
		}
	})
	return err
}

// watch loops over fsnotify events and forwards write/create/rename
// notifications for watched files. On an fsnotify error it closes the native
// watcher and falls back to [Watcher.poll].
func (w *Watcher) watch(fsw *fsnotify.Watcher) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if w.watched(event.Name) {
					w.notify()
				}
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Info("fsnotify error, switching to polling", "error", err)
			w.mu.Lock()
			if w.fsw != nil {
				w.fsw.Close()
				w.fsw = nil
			}
			w.mu.Unlock()
			w.startPolling()
			return
		}
	}
}

func (w *Watcher) startPolling() {
	w.polling.Store(true)
	go w.poll()
}

// poll periodically stats the files and sends a notification when the latest
// modification time advances.
func (w *Watcher) poll() {
	lastMod := w.latestMod()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			mod := w.latestMod()
			if mod.After(lastMod) {
				lastMod = mod
				w.notify()
			}
		}
	}
}

// latestMod returns the most recent modification time among the files.
// Missing files are ignored.
func (w *Watcher) latestMod() time.Time {
	var latest time.Time
	for f := range w.files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest
}

// notify sends a single signal to the events channel. If a signal is already
// pending the call is a no-op, coalescing rapid successive changes.
func (w *Watcher) notify() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}
