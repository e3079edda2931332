package trunc

import "os"

// Truncator is the interface implemented by byte sequences whose
// effective length can be shortened.
//
// Truncate sets the sequence's length to size bytes, counted from the
// start. The behavior when size is larger than the current length is
// unspecified at the interface level: implementations may reject it,
// extend the data, or delegate to a platform call. Consult the concrete
// type's documentation.
//
// The method requires exclusive access to the receiver for the duration
// of the call; no locking is performed.
type Truncator interface {
	Truncate(size int64) error
}

// *os.File satisfies the contract with its native Truncate method,
// which delegates to the platform resize call. Growing is permitted and
// platform-defined; errors surface unchanged as *os.PathError.
var _ Truncator = (*os.File)(nil)

var (
	_ Truncator = (*Buffer)(nil)
	_ Truncator = (*View)(nil)
	_ Truncator = (*Cursor)(nil)
)
