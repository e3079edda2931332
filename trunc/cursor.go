package trunc

// Cursor pairs any Truncator with a read/write position. It adds no
// policy of its own: truncation is delegated to the inner value, and on
// success the position is clamped so it never points past the new end.
//
// If the inner truncation fails, the error is propagated unchanged and
// the position is not touched.
type Cursor struct {
	inner Truncator
	pos   int64
}

// NewCursor wraps t with a cursor positioned at 0.
func NewCursor(t Truncator) *Cursor {
	return &Cursor{inner: t}
}

// Inner returns the wrapped Truncator.
func (c *Cursor) Inner() Truncator {
	return c.inner
}

// Position returns the current cursor position.
func (c *Cursor) Position() int64 {
	return c.pos
}

// SetPosition moves the cursor. The position is not validated against
// the inner sequence's length; only Truncate enforces the bound, by
// clamping.
func (c *Cursor) SetPosition(pos int64) {
	c.pos = pos
}

// Truncate delegates to the inner Truncator, then moves the cursor back
// to size if it lies in the truncated area. The inner call happens
// first: on failure the cursor is left exactly where it was.
func (c *Cursor) Truncate(size int64) error {
	if err := c.inner.Truncate(size); err != nil {
		return err
	}
	if c.pos > size {
		c.pos = size
	}
	return nil
}
