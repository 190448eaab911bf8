package markup

import "bytes"

// Cursor is a read-only view over the unconsumed tail of an input buffer.
// Narrowing a cursor never copies or mutates the underlying bytes.
type Cursor struct {
	src []byte
	off int
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src []byte) Cursor {
	return Cursor{src: src}
}

// Remaining returns the unconsumed bytes.
func (c Cursor) Remaining() []byte {
	return c.src[c.off:]
}

// Len returns the number of unconsumed bytes.
func (c Cursor) Len() int {
	return len(c.src) - c.off
}

// Empty reports whether the cursor is exhausted.
func (c Cursor) Empty() bool {
	return c.off >= len(c.src)
}

// Offset returns the number of bytes consumed from the original input.
func (c Cursor) Offset() int {
	return c.off
}

// Advance drops the first n bytes. Advancing past the end yields an empty cursor.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}
	if n >= c.Len() {
		c.off = len(c.src)
		return c
	}
	c.off += n
	return c
}

// AdvanceWhile drops the longest prefix whose bytes satisfy pred.
func (c Cursor) AdvanceWhile(pred func(byte) bool) Cursor {
	for c.off < len(c.src) && pred(c.src[c.off]) {
		c.off++
	}
	return c
}

// Peek returns the byte i positions ahead, if present.
func (c Cursor) Peek(i int) (byte, bool) {
	if i < 0 || c.off+i >= len(c.src) {
		return 0, false
	}
	return c.src[c.off+i], true
}

// Is reports whether the byte i positions ahead equals b.
func (c Cursor) Is(i int, b byte) bool {
	v, ok := c.Peek(i)
	return ok && v == b
}

// HasPrefix reports whether the remaining bytes start with p.
func (c Cursor) HasPrefix(p []byte) bool {
	return bytes.HasPrefix(c.Remaining(), p)
}

// IndexByte returns the index of the first b in the remaining bytes, or -1.
func (c Cursor) IndexByte(b byte) int {
	return bytes.IndexByte(c.Remaining(), b)
}

// Span returns the bytes between c and a later cursor over the same input.
func (c Cursor) Span(end Cursor) []byte {
	if end.off < c.off {
		return nil
	}
	return c.src[c.off:end.off]
}
