package gitignore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/globkit/fastglob/gitignore"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")

	if err := os.WriteFile(path, []byte("*.log\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w, err := gitignore.NewWatcher(path, gitignore.Options{})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if !w.Match("debug.log", false).Ignored {
		t.Fatalf("expected debug.log to be ignored on initial load")
	}

	if err := os.WriteFile(path, []byte("*.tmp\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)

	for time.Now().Before(deadline) {
		if w.Match("file.tmp", false).Ignored && !w.Match("debug.log", false).Ignored {
			return
		}

		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("watcher did not pick up rewritten patterns in time")
}

func TestWatcherOnErrorCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")

	if err := os.WriteFile(path, []byte("*.log\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w, err := gitignore.NewWatcher(path, gitignore.Options{})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	called := make(chan struct{}, 1)
	w.OnError(func(error) {
		select {
		case called <- struct{}{}:
		default:
		}
	})

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// removing the watched file does not guarantee an error event on every
	// platform's fsnotify backend; this test only confirms the callback is
	// wired and does not assume delivery within a hard deadline.
	select {
	case <-called:
	case <-time.After(200 * time.Millisecond):
	}
}
