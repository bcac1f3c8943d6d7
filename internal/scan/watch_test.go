// Tests for the file watcher: construction, event delivery for watched and
// unwatched files, close semantics, and the polling fallback.
package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitEvent reports whether w delivers an event within d.
func waitEvent(w *Watcher, d time.Duration) bool {
	select {
	case <-w.Events():
		return true
	case <-time.After(d):
		return false
	}
}

func TestNewWatcherNoFiles(t *testing.T) {
	if _, err := NewWatcher(nil, time.Second); err == nil {
		t.Fatal("expected error for empty path list")
	}
}

func TestWatcherFileChange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow watcher test in short mode")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "colors.txt")
	os.WriteFile(path, []byte("#fff\n"), 0o644)

	w, err := NewWatcher([]string{path}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Give the watcher a moment to initialise.
	time.Sleep(100 * time.Millisecond)

	// Push the mtime forward so the polling fallback also sees the change.
	os.WriteFile(path, []byte("#000\n"), 0o644)
	future := time.Now().Add(time.Minute)
	os.Chtimes(path, future, future)

	if !waitEvent(w, 3*time.Second) {
		t.Fatal("no event after modifying watched file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow watcher test in short mode")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "colors.txt")
	os.WriteFile(path, []byte("#fff\n"), 0o644)

	w, err := NewWatcher([]string{path}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()
	time.Sleep(100 * time.Millisecond)

	os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644)

	if waitEvent(w, 300*time.Millisecond) {
		t.Error("unexpected event for an unwatched file")
	}
}

func TestWatcherPolling(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.txt")
	os.WriteFile(path, []byte("#fff\n"), 0o644)

	w, err := newWatcher([]string{path}, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("newWatcher: %v", err)
	}
	defer w.Close()
	w.startPolling()

	if !w.Polling() {
		t.Fatal("Polling() = false after startPolling")
	}

	// Let the poller record the initial mtime before changing it.
	time.Sleep(60 * time.Millisecond)
	future := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if !waitEvent(w, 2*time.Second) {
		t.Fatal("polling watcher delivered no event")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")
	os.WriteFile(path, []byte("#fff\n"), 0o644)

	w, err := NewWatcher([]string{path}, time.Second)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
