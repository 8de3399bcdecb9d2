package integrator

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gabrieluxcam/mcp-uxcam-android/pkg/logging"
)

// Watcher observes the Gradle scripts and application sources of a project
// and invokes a callback, debounced, whenever an integration-relevant file
// changes. It lets the serve --watch mode report integration drift while
// the developer edits the project.
type Watcher struct {
	mu sync.Mutex

	root   string
	module string

	// debounceInterval is how long to wait for additional changes before
	// firing the callback.
	debounceInterval time.Duration

	onChange func()

	watcher *fsnotify.Watcher
	timer   *time.Timer
	running bool
	stopCh  chan struct{}
}

// NewWatcher creates a watcher for the project at root. onChange runs on the
// watcher goroutine after changes settle for debounceInterval.
func NewWatcher(root, module string, debounceInterval time.Duration, onChange func()) *Watcher {
	if debounceInterval == 0 {
		debounceInterval = 500 * time.Millisecond
	}
	return &Watcher{
		root:             root,
		module:           module,
		debounceInterval: debounceInterval,
		onChange:         onChange,
		stopCh:           make(chan struct{}),
	}
}

// Start begins watching. It returns immediately; events are processed on a
// background goroutine until Stop is called or the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher
	w.running = true
	w.stopCh = make(chan struct{})

	// Watch the project root (settings script), the app module (build
	// script) and every directory under the module source tree.
	w.addWatch(w.root)
	w.addWatch(filepath.Join(w.root, w.module))
	srcDir := filepath.Join(w.root, w.module, "src")
	if _, err := os.Stat(srcDir); err == nil {
		_ = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
			if err == nil && d.IsDir() {
				w.addWatch(path)
			}
			return nil
		})
	}

	go w.loop(ctx)
	return nil
}

// Stop stops watching. It is safe to call multiple times.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
}

func (w *Watcher) addWatch(dir string) {
	if err := w.watcher.Add(dir); err != nil {
		logging.Debug("Watcher", "Cannot watch %s: %v", dir, err)
	}
}

func (w *Watcher) loop(ctx context.Context) {
	w.mu.Lock()
	watcher := w.watcher
	stopCh := w.stopCh
	w.mu.Unlock()
	if watcher == nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-stopCh:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("Watcher", "Watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories under the source tree need their own watch.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.mu.Lock()
			if w.running {
				w.addWatch(event.Name)
			}
			w.mu.Unlock()
			return
		}
	}

	if !relevantFile(event.Name) {
		return
	}
	logging.Debug("Watcher", "Change detected: %s (%s)", event.Name, event.Op)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceInterval, w.onChange)
}

// relevantFile reports whether a change to the named file can affect the
// integration status.
func relevantFile(path string) bool {
	base := filepath.Base(path)
	switch base {
	case "settings.gradle", "settings.gradle.kts", "build.gradle", "build.gradle.kts", "AndroidManifest.xml":
		return true
	}
	return strings.HasSuffix(base, ".kt") || strings.HasSuffix(base, ".java")
}
