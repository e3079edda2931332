// Package trunc defines a single contract for shortening byte sequences
// and implements it for the common representations.
//
// The contract is one method:
//
//	type Truncator interface {
//		Truncate(size int64) error
//	}
//
// Four representations satisfy it:
//
//   - Buffer: an owned, growable byte buffer
//   - View: a borrowed, non-owning window into someone else's bytes
//   - *os.File: the standard library file handle, which already carries
//     a Truncate method with this exact signature
//   - Cursor: a position-tracking wrapper around any other Truncator
//
// # Shrink-Only vs. Platform-Defined
//
// The behavior when size exceeds the current length is deliberately not
// part of the contract; each implementation documents its own policy:
//
//   - Buffer and View reject it with an invalid-size error and leave the
//     receiver unmodified.
//   - *os.File delegates to the platform resize call, which commonly
//     extends the file with zero bytes. The shrink-only policy is NOT
//     imposed on files: the asymmetry reflects the native semantics of
//     in-memory containers versus OS file resizing and is intentional.
//
// New implementations must document which policy they follow rather than
// assuming a default.
//
// # Basic Usage
//
// Truncate an owned buffer:
//
//	buf := trunc.NewBuffer([]byte{0, 1, 2, 3})
//	if err := buf.Truncate(3); err != nil { ... }
//
// Narrow a borrowed view in place, without copying:
//
//	v := trunc.View(data)
//	if err := v.Truncate(3); err != nil { ... }
//
// Generic code is written against the interface and works the same
// whether it holds a buffer, a view, a file, or a cursor:
//
//	func clear(t trunc.Truncator) error { return t.Truncate(0) }
//
// # Errors
//
// Buffer and View fail only with a *SizeError, which unwraps to
// ErrInvalidSize and reports both the requested and the current length.
// File errors surface unchanged from the platform call. Cursor
// propagates its inner error untouched.
package trunc
