package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Poll watches a single file by stat polling and reports shrinks on the
// returned channel. It is the fallback for filesystems where fsnotify
// is unreliable. The channel is closed when ctx is cancelled.
//
// Stat failures are skipped: a file that disappears and comes back is
// compared against its last seen size.
func Poll(ctx context.Context, path string, interval time.Duration) <-chan Event {
	ch := make(chan Event, 16)

	go func() {
		defer close(ch)

		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}

		var last int64 = -1
		if info, err := os.Stat(abs); err == nil {
			last = info.Size()
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				info, err := os.Stat(abs)
				if err != nil {
					continue
				}
				size := info.Size()
				if last >= 0 && size < last {
					select {
					case ch <- Event{Path: abs, OldSize: last, NewSize: size}:
					default:
					}
				}
				last = size
			}
		}
	}()

	return ch
}
