package markup

// maxExpansion bounds the output bytes produced per input byte. The worst case
// is a lone digit inside a code block, which becomes a classed number span.
const maxExpansion = len(`<span class="code_number">`) + 1 + len(spanCloseTag)

// MaxOutputSize returns a sink capacity that never clips for n input bytes.
func MaxOutputSize(n int) int {
	if n <= 0 {
		return 0
	}
	return n * maxExpansion
}

// Convert writes the HTML fragment for src to out.
//
// A nil return means the whole input was consumed; out may still be clipped,
// which callers detect with out.Clipped. On error out holds a partial fragment
// that should be discarded. Errors are *ParseError values wrapping one of the
// Err* sentinels.
func Convert(src []byte, out *Sink) error {
	cv := converter{in: NewCursor(src), out: out}
	return cv.run()
}

// ToHTML converts src into a freshly allocated buffer that is large enough to
// never clip.
func ToHTML(src []byte) ([]byte, error) {
	out := NewSink(MaxOutputSize(len(src)))
	if err := Convert(src, out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type converter struct {
	in    Cursor
	out   *Sink
	style StyleRegister
}

func (cv *converter) run() error {
	for !cv.in.Empty() {
		if err := cv.step(); err != nil {
			return err
		}
	}
	if cv.style.InlineOpen() {
		return failAt(cv.in, ErrUnterminatedStyle)
	}
	// end of input terminates the last line
	cv.closeHeading()
	return nil
}

// step dispatches on the lead bytes and consumes at least one byte unless it
// fails.
func (cv *converter) step() error {
	c := cv.in.Remaining()[0]
	switch c {
	case '*':
		return cv.emphasis()
	case '_':
		if cv.in.Is(1, '_') {
			cv.toggle(&cv.style.Underline, "<u>", "</u>")
			return nil
		}
	case '~':
		if cv.in.Is(1, '~') {
			cv.toggle(&cv.style.Strikethrough, "<s>", "</s>")
			return nil
		}
	case '#':
		return cv.heading()
	case '`':
		if cv.style.Open() {
			return failAt(cv.in, ErrStyleOpen)
		}
		if cv.in.HasPrefix(codeFence) {
			return cv.codeBlock()
		}
		return cv.rawSpan()
	case '[':
		return cv.link()
	case '\n':
		cv.closeHeading()
		cv.out.PushByte('\n')
		cv.in = cv.in.Advance(1)
		return nil
	case '\\':
		next, ok := cv.in.Peek(1)
		if !ok {
			return failAt(cv.in, ErrDanglingEscape)
		}
		pushEscapedByte(cv.out, next)
		cv.in = cv.in.Advance(2)
		return nil
	}
	pushEscapedByte(cv.out, c)
	cv.in = cv.in.Advance(1)
	return nil
}

func (cv *converter) emphasis() error {
	run := 1
	for run < 3 && cv.in.Is(run, '*') {
		run++
	}
	level := Emphasis(run)
	switch cv.style.Emphasis {
	case EmphasisNone:
		cv.style.Emphasis = level
		cv.out.PushString(level.openTag())
	case level:
		cv.style.Emphasis = EmphasisNone
		cv.out.PushString(level.closeTag())
	default:
		return failAt(cv.in, ErrMismatchedEmphasis)
	}
	cv.in = cv.in.Advance(run)
	return nil
}

func (cv *converter) toggle(open *bool, openTag, closeTag string) {
	if *open {
		cv.out.PushString(closeTag)
	} else {
		cv.out.PushString(openTag)
	}
	*open = !*open
	cv.in = cv.in.Advance(2)
}

func (cv *converter) heading() error {
	if cv.style.Heading != 0 {
		return failAt(cv.in, ErrNestedHeading)
	}
	level := 0
	for cv.in.Is(level, '#') {
		level++
	}
	if level > MaxHeadingLevel {
		return failAt(cv.in, ErrHeadingLevel)
	}
	if !cv.in.Is(level, ' ') {
		return failAt(cv.in, ErrHeadingSpace)
	}
	cv.style.Heading = level
	cv.out.PushString(headingOpenTags[level])
	cv.in = cv.in.Advance(level + 1)
	return nil
}

func (cv *converter) closeHeading() {
	if cv.style.Heading == 0 {
		return
	}
	cv.out.PushString(headingCloseTags[cv.style.Heading])
	cv.style.Heading = 0
}

func (cv *converter) rawSpan() error {
	body := cv.in.Advance(1)
	end := body.IndexByte('`')
	if end < 0 {
		return failAt(cv.in, ErrUnterminatedRaw)
	}
	cv.out.PushString(`<span class="raw_text">`)
	pushEscaped(cv.out, body.Remaining()[:end])
	cv.out.PushString(spanCloseTag)
	cv.in = body.Advance(end + 1)
	return nil
}

func (cv *converter) link() error {
	if cv.style.Open() {
		return failAt(cv.in, ErrStyleOpen)
	}
	text := cv.in.Advance(1)
	n := text.IndexByte(']')
	if n < 0 {
		return failAt(cv.in, ErrUnterminatedLinkText)
	}
	if n == 0 {
		return failAt(cv.in, ErrEmptyLinkText)
	}
	rest := text.Advance(n + 1)
	if !rest.Is(0, '(') {
		return failAt(rest, ErrMissingLinkParen)
	}
	dest := rest.Advance(1)
	m := dest.IndexByte(')')
	if m < 0 {
		return failAt(rest, ErrUnterminatedLinkDest)
	}
	if m == 0 {
		return failAt(rest, ErrEmptyLinkDest)
	}
	cv.out.PushString(`<a href="`)
	pushEscaped(cv.out, dest.Remaining()[:m])
	cv.out.PushString(`">`)
	pushEscaped(cv.out, text.Remaining()[:n])
	cv.out.PushString("</a>")
	cv.in = dest.Advance(m + 1)
	return nil
}
