package trunc

// View is a borrowed, non-owning window into bytes owned elsewhere.
// Construct one by converting a byte slice: trunc.View(b).
//
// Truncation is shrink-only and rebinds the view itself to a narrower
// window over the same storage; no bytes are copied or written, and
// other views over the same storage are unaffected. A View can only
// ever narrow, never widen back.
type View []byte

// Len returns the view's current length in bytes.
func (v *View) Len() int {
	return len(*v)
}

// Bytes returns the viewed bytes without copying. The underlying
// storage belongs to whoever created the view.
func (v *View) Bytes() []byte {
	return *v
}

// String returns the viewed bytes as a string.
func (v *View) String() string {
	return string(*v)
}

// Truncate narrows the view to its first size bytes.
//
// A negative size or a size greater than Len() returns a *SizeError and
// leaves the view unchanged.
func (v *View) Truncate(size int64) error {
	if size < 0 || size > int64(len(*v)) {
		return &SizeError{Size: size, Len: int64(len(*v))}
	}
	*v = (*v)[:size]
	return nil
}
