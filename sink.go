package markup

import "io"

// Sink is a fixed-capacity, append-only output buffer. Appends that do not fit
// are dropped and set a sticky clipped flag; callers check Clipped once after
// conversion instead of after every write.
type Sink struct {
	buf     []byte
	clipped bool
}

// NewSink allocates a sink that holds at most capacity bytes.
func NewSink(capacity int) *Sink {
	if capacity < 0 {
		capacity = 0
	}
	return &Sink{buf: make([]byte, 0, capacity)}
}

// NewSinkBuffer returns a sink writing into buf. The capacity of the sink is
// cap(buf); existing contents are discarded.
func NewSinkBuffer(buf []byte) *Sink {
	return &Sink{buf: buf[:0]}
}

// PushByte appends c and reports whether the sink is still unclipped.
func (s *Sink) PushByte(c byte) bool {
	if s.clipped {
		return false
	}
	if len(s.buf) == cap(s.buf) {
		s.clipped = true
		return false
	}
	s.buf = append(s.buf, c)
	return true
}

// PushBytes appends p in full or not at all.
func (s *Sink) PushBytes(p []byte) bool {
	if s.clipped {
		return false
	}
	if len(p) > cap(s.buf)-len(s.buf) {
		s.clipped = true
		return false
	}
	s.buf = append(s.buf, p...)
	return true
}

// PushString appends str in full or not at all.
func (s *Sink) PushString(str string) bool {
	if s.clipped {
		return false
	}
	if len(str) > cap(s.buf)-len(s.buf) {
		s.clipped = true
		return false
	}
	s.buf = append(s.buf, str...)
	return true
}

// Bytes returns the written bytes. The slice aliases the sink storage.
func (s *Sink) Bytes() []byte { return s.buf }

// String returns a copy of the written bytes.
func (s *Sink) String() string { return string(s.buf) }

// Len returns the number of written bytes.
func (s *Sink) Len() int { return len(s.buf) }

// Cap returns the fixed capacity.
func (s *Sink) Cap() int { return cap(s.buf) }

// Clipped reports whether any append was dropped.
func (s *Sink) Clipped() bool { return s.clipped }

// Reset empties the sink and clears the clipped flag, keeping its storage.
func (s *Sink) Reset() {
	s.buf = s.buf[:0]
	s.clipped = false
}

// WriteTo writes the buffered bytes to w.
func (s *Sink) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.buf)
	return int64(n), err
}
