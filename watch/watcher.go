package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/fsnotify/fsnotify"
)

// Event reports that a watched file's size decreased.
type Event struct {
	Path    string // absolute path of the file
	OldSize int64  // size before the shrink
	NewSize int64  // size observed after the shrink
}

// Watcher observes files and reports when they shrink. Events and
// errors are delivered on the channels returned by Events and Errors
// until Close is called.
type Watcher struct {
	fsw *fsnotify.Watcher

	mu    sync.Mutex
	sizes *treemap.Map        // abs path -> last known size (int64)
	dirs  map[string]struct{} // directories registered with fsnotify

	events chan Event
	errs   chan error

	closeOnce sync.Once
}

// NewWatcher creates a Watcher with no files under observation.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fsw:    fsw,
		sizes:  treemap.NewWithStringComparator(),
		dirs:   make(map[string]struct{}),
		events: make(chan Event, 16),
		errs:   make(chan error, 1),
	}
	go w.run()
	return w, nil
}

// Add puts the named file under observation. The file must exist; its
// current size becomes the baseline for shrink detection. The parent
// directory is watched rather than the file itself, so the file stays
// observed across replace-by-rename.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("watch %s: is a directory", path)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	dir := filepath.Dir(abs)
	if _, ok := w.dirs[dir]; !ok {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dirs[dir] = struct{}{}
	}
	w.sizes.Put(abs, info.Size())
	return nil
}

// Paths returns the absolute paths currently under observation, in
// sorted order.
func (w *Watcher) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, w.sizes.Size())
	for _, k := range w.sizes.Keys() {
		paths = append(paths, k.(string))
	}
	return paths
}

// Events returns the channel shrink events are delivered on. The
// channel is closed when the Watcher is closed. Slow receivers drop
// events rather than block the watch loop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel watch errors are delivered on.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops observation and releases the underlying watcher. It is
// safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.events)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.check(event.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// check compares the file's current size with the last one recorded
// and emits an event if it shrank.
func (w *Watcher) check(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	last, ok := w.sizes.Get(path)
	if !ok {
		// A neighbor in a watched directory, not one of ours.
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		// Removed or mid-rename; keep the old baseline.
		return
	}

	size := info.Size()
	if size < last.(int64) {
		select {
		case w.events <- Event{Path: path, OldSize: last.(int64), NewSize: size}:
		default:
		}
	}
	w.sizes.Put(path, size)
}
