package markup

import (
	"bytes"
	"errors"
	"testing"
)

func TestSinkAtomicPush(t *testing.T) {
	s := NewSink(5)
	if !s.PushString("abc") {
		t.Fatalf("first push should fit")
	}
	if s.PushBytes([]byte("def")) {
		t.Fatalf("overflowing push should report clipped")
	}
	if got := s.String(); got != "abc" {
		t.Fatalf("partial span written: %q", got)
	}
	if !s.Clipped() {
		t.Fatalf("expected clipped")
	}
	// clipping is sticky even when a later push would fit
	if s.PushByte('x') || s.PushString("y") {
		t.Fatalf("push after clip should fail")
	}
	if s.Len() != 3 || s.Cap() != 5 {
		t.Fatalf("len=%d cap=%d", s.Len(), s.Cap())
	}

	s.Reset()
	if s.Clipped() || s.Len() != 0 || s.Cap() != 5 {
		t.Fatalf("reset left state behind: clipped=%v len=%d cap=%d", s.Clipped(), s.Len(), s.Cap())
	}
	if !s.PushString("12345") || s.Clipped() {
		t.Fatalf("exact fit should not clip")
	}
	if s.PushByte('6') {
		t.Fatalf("byte past capacity should clip")
	}
}

func TestSinkZeroAndNegativeCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		s := NewSink(capacity)
		if s.PushByte('a') {
			t.Fatalf("cap %d: push should fail", capacity)
		}
		if !s.Clipped() {
			t.Fatalf("cap %d: expected clipped", capacity)
		}
	}
	s := NewSink(0)
	if !s.PushString("") || s.Clipped() {
		t.Fatalf("empty push should always fit")
	}
}

func TestSinkBuffer(t *testing.T) {
	buf := make([]byte, 3, 4)
	copy(buf, "old")
	s := NewSinkBuffer(buf)
	if s.Len() != 0 || s.Cap() != 4 {
		t.Fatalf("len=%d cap=%d", s.Len(), s.Cap())
	}
	s.PushString("new!")
	if got := string(buf[:4]); got != "new!" {
		t.Fatalf("sink should write into caller storage, got %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestSinkWriteTo(t *testing.T) {
	s := NewSink(8)
	s.PushString("<u>")
	var out bytes.Buffer
	n, err := s.WriteTo(&out)
	if err != nil || n != 3 || out.String() != "<u>" {
		t.Fatalf("n=%d err=%v out=%q", n, err, out.String())
	}
	if _, err := s.WriteTo(failWriter{}); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor([]byte("abc"))
	if c.Empty() || c.Len() != 3 || c.Offset() != 0 {
		t.Fatalf("fresh cursor: len=%d off=%d", c.Len(), c.Offset())
	}
	next := c.Advance(1)
	if string(next.Remaining()) != "bc" || next.Offset() != 1 {
		t.Fatalf("advance: %q off=%d", next.Remaining(), next.Offset())
	}
	if string(c.Remaining()) != "abc" {
		t.Fatalf("advance mutated the original cursor")
	}
	if end := c.Advance(10); !end.Empty() || end.Len() != 0 || end.Offset() != 3 {
		t.Fatalf("advance past end: len=%d off=%d", end.Len(), end.Offset())
	}
	if same := c.Advance(-2); same.Offset() != 0 {
		t.Fatalf("negative advance moved cursor")
	}
	if b, ok := c.Peek(2); !ok || b != 'c' {
		t.Fatalf("peek(2)=%q,%v", b, ok)
	}
	if _, ok := c.Peek(3); ok {
		t.Fatalf("peek past end should fail")
	}
	if _, ok := c.Peek(-1); ok {
		t.Fatalf("negative peek should fail")
	}
	if !c.Is(1, 'b') || c.Is(5, 'b') {
		t.Fatalf("Is mismatch")
	}
	if !c.HasPrefix([]byte("ab")) || c.HasPrefix([]byte("abcd")) {
		t.Fatalf("HasPrefix mismatch")
	}
	if c.IndexByte('c') != 2 || c.IndexByte('z') != -1 {
		t.Fatalf("IndexByte mismatch")
	}
	word := c.AdvanceWhile(func(b byte) bool { return b < 'c' })
	if string(c.Span(word)) != "ab" {
		t.Fatalf("span=%q", c.Span(word))
	}
	if word.Span(c) != nil {
		t.Fatalf("backwards span should be nil")
	}
	var empty Cursor
	if !empty.Empty() || empty.Advance(1).Len() != 0 {
		t.Fatalf("zero cursor should be empty")
	}
}

func TestEscape(t *testing.T) {
	if got := Escape(`<a href="x">Tom & Jerry's</a>`); got != "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&apos;s&lt;/a&gt;" {
		t.Fatalf("got %q", got)
	}
	if got := Escape("plain ✓"); got != "plain ✓" {
		t.Fatalf("got %q", got)
	}
	if got := string(AppendEscaped([]byte("x:"), []byte("<>"))); got != "x:&lt;&gt;" {
		t.Fatalf("got %q", got)
	}
	for c := 0; c < 256; c++ {
		e, ok := entity(byte(c))
		switch byte(c) {
		case '"', '\'', '&', '<', '>':
			if !ok || e == "" {
				t.Fatalf("byte %q should map to an entity", c)
			}
		default:
			if ok {
				t.Fatalf("byte %#x should pass through", c)
			}
		}
	}
}

func TestStyleRegister(t *testing.T) {
	var r StyleRegister
	if r.Open() || r.InlineOpen() {
		t.Fatalf("zero register should be closed")
	}
	r.Heading = 2
	if !r.Open() || r.InlineOpen() {
		t.Fatalf("heading counts as open but not inline")
	}
	r = StyleRegister{Strikethrough: true}
	if !r.Open() || !r.InlineOpen() {
		t.Fatalf("strikethrough should be open")
	}
	if EmphasisBoldItalic.openTag() != `<b class="bold_italic">` || EmphasisItalic.closeTag() != "</em>" {
		t.Fatalf("emphasis tags mismatch")
	}
}
