// Package watch detects external truncation of files on disk.
//
// A Watcher observes a set of files and emits an Event whenever one of
// them shrinks, whether through the trunc package, truncate(1), an
// O_TRUNC open, or any other writer. Growth and same-size writes are
// not reported.
//
//	w, err := watch.NewWatcher()
//	if err != nil { ... }
//	defer w.Close()
//
//	if err := w.Add("logs/app.log"); err != nil { ... }
//	for ev := range w.Events() {
//		fmt.Printf("%s shrank from %d to %d bytes\n", ev.Path, ev.OldSize, ev.NewSize)
//	}
//
// Watching is built on fsnotify. For filesystems where inotify-style
// notification is unreliable (network mounts, some containers), Poll
// provides the same events by stat polling.
package watch
