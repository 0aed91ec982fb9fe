package gitignore

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a *GitIgnore in sync with a .gitignore file on disk,
// recompiling its patterns whenever the file is written or recreated (the
// rename-into-place pattern most editors use on save).
type Watcher struct {
	path string
	opts Options

	fsw *fsnotify.Watcher

	current atomic.Pointer[GitIgnore]

	mu      sync.Mutex
	onError func(error)

	done chan struct{}
}

// NewWatcher loads path immediately and begins watching it for changes.
// The returned Watcher must be closed with Close when no longer needed.
func NewWatcher(path string, opts Options) (*Watcher, error) {
	gi, err := loadFile(path, opts)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path: path,
		opts: opts,
		fsw:  fsw,
		done: make(chan struct{}),
	}
	w.current.Store(gi)

	go w.run()

	return w, nil
}

func loadFile(path string, opts Options) (*GitIgnore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return NewOptions(opts, splitLines(string(data))...), nil
}

func splitLines(s string) []string {
	var lines []string

	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}

	if start < len(s) {
		lines = append(lines, s[start:])
	}

	return lines
}

// OnError registers a callback invoked when a reload attempt fails; the
// previously loaded pattern set remains active. Safe to call at any time.
func (w *Watcher) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.onError = fn
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			gi, err := loadFile(w.path, w.opts)
			if err != nil {
				w.reportError(err)
				continue
			}

			w.current.Store(gi)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			w.reportError(err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reportError(err error) {
	w.mu.Lock()
	fn := w.onError
	w.mu.Unlock()

	if fn != nil {
		fn(err)
	}
}

// Current returns the most recently (successfully) loaded *GitIgnore.
func (w *Watcher) Current() *GitIgnore {
	return w.current.Load()
}

// Match evaluates pathname against the currently loaded pattern set.
func (w *Watcher) Match(pathname string, isDir bool) Match {
	return w.Current().Match(pathname, isDir)
}

// Close stops watching and releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	close(w.done)

	return w.fsw.Close()
}
