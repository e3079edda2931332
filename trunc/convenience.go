package trunc

import "os"

// Reset truncates t to length zero. For the in-memory representations
// this always succeeds; for files it delegates to the platform call.
func Reset(t Truncator) error {
	return t.Truncate(0)
}

// Head returns a view of the first n bytes of b without copying. It
// fails with a *SizeError if n is negative or exceeds len(b).
func Head(b []byte, n int64) ([]byte, error) {
	v := View(b)
	if err := v.Truncate(n); err != nil {
		return nil, err
	}
	return v, nil
}

// ShrinkFile sets the size of the named file to size bytes via the
// platform resize call. Like *os.File.Truncate, it may grow the file on
// platforms that support it; platform errors are returned unchanged.
func ShrinkFile(path string, size int64) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
