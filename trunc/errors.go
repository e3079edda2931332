package trunc

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a truncate size the receiver cannot take:
// negative, or larger than the current length for shrink-only
// representations. Errors of this kind unwrap to this sentinel.
var ErrInvalidSize = errors.New("invalid truncate size")

// SizeError reports a rejected truncate size. It is returned by the
// shrink-only representations (Buffer, View) and carries both the
// requested size and the length at the time of the call. The receiver
// is guaranteed unmodified when this error is returned.
type SizeError struct {
	Size int64 // requested size
	Len  int64 // current length
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	if e.Size < 0 {
		return fmt.Sprintf("negative truncate size (%d)", e.Size)
	}
	return fmt.Sprintf("tried to truncate to greater length (%d > %d)", e.Size, e.Len)
}

// Unwrap returns ErrInvalidSize for errors.Is support.
func (e *SizeError) Unwrap() error {
	return ErrInvalidSize
}

// IsInvalidSize reports whether err is a size rejection from a
// shrink-only representation, as opposed to an I/O failure from the
// platform layer.
func IsInvalidSize(err error) bool {
	return errors.Is(err, ErrInvalidSize)
}
