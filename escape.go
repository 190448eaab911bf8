package markup

const (
	entityQuot = "&quot;"
	entityApos = "&apos;"
	entityAmp  = "&amp;"
	entityLt   = "&lt;"
	entityGt   = "&gt;"
)

// entity returns the replacement for a reserved byte.
func entity(c byte) (string, bool) {
	switch c {
	case '"':
		return entityQuot, true
	case '\'':
		return entityApos, true
	case '&':
		return entityAmp, true
	case '<':
		return entityLt, true
	case '>':
		return entityGt, true
	}
	return "", false
}

func pushEscapedByte(s *Sink, c byte) {
	if e, ok := entity(c); ok {
		s.PushString(e)
		return
	}
	s.PushByte(c)
}

func pushEscaped(s *Sink, p []byte) {
	for _, c := range p {
		pushEscapedByte(s, c)
	}
}

// AppendEscaped appends src to dst with HTML reserved characters replaced by
// entities.
func AppendEscaped(dst, src []byte) []byte {
	for _, c := range src {
		if e, ok := entity(c); ok {
			dst = append(dst, e...)
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// Escape returns s with HTML reserved characters replaced by entities.
func Escape(s string) string {
	for i := 0; i < len(s); i++ {
		if _, ok := entity(s[i]); ok {
			out := make([]byte, 0, len(s)+16)
			out = append(out, s[:i]...)
			return string(AppendEscaped(out, []byte(s[i:])))
		}
	}
	return s
}
