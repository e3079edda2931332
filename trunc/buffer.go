package trunc

// Buffer is an owned, growable byte buffer. The zero value is an empty
// buffer ready to use.
//
// Truncation is shrink-only: a size larger than the current length is
// rejected with a *SizeError and the buffer is left unmodified.
type Buffer struct {
	data []byte
}

// NewBuffer creates a buffer that takes ownership of b. The caller must
// not use b after the call.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Len returns the current length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the buffer's contents. The slice is valid until the
// next mutating call.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns the contents as a string.
func (b *Buffer) String() string {
	return string(b.data)
}

// Write appends p to the buffer, growing it as needed. It never fails;
// the error is always nil and exists to satisfy io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Truncate shortens the buffer to size bytes, discarding everything
// after. Whether trailing capacity is released is unspecified.
//
// A negative size or a size greater than Len() returns a *SizeError and
// leaves the buffer unchanged.
func (b *Buffer) Truncate(size int64) error {
	if size < 0 || size > int64(len(b.data)) {
		return &SizeError{Size: size, Len: int64(len(b.data))}
	}
	b.data = b.data[:size]
	return nil
}
