package markup

var codeFence = []byte("```")

const (
	codeOpenTag  = "<code>"
	codeCloseTag = "</code>"
	spanCloseTag = "</span>"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	c |= 0x20
	return c >= 'a' && c <= 'z'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'f')
}

func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// codeBlock converts a fenced code block. The cursor sits on the opening fence.
func (cv *converter) codeBlock() error {
	start := cv.in
	cv.out.PushString(codeOpenTag)
	cv.in = cv.in.Advance(len(codeFence))
	for {
		if cv.in.Len() < len(codeFence) {
			return failAt(start, ErrUnterminatedCode)
		}
		if cv.in.HasPrefix(codeFence) {
			cv.in = cv.in.Advance(len(codeFence))
			cv.out.PushString(codeCloseTag)
			return nil
		}
		if err := cv.codeToken(); err != nil {
			return err
		}
	}
}

// codeToken consumes one lexeme. Every path advances the cursor.
func (cv *converter) codeToken() error {
	c := cv.in.Remaining()[0]
	switch {
	case isIdentStart(c):
		cv.codeIdentifier()
		return nil
	case c == '"':
		return cv.codeString()
	case isDigit(c):
		return cv.codeNumber()
	}
	pushEscapedByte(cv.out, c)
	cv.in = cv.in.Advance(1)
	return nil
}

// codeIdentifier consumes a word that starts with a letter or '_' and continues
// with letters, digits or '_', so "x1" stays one identifier and sized type
// keywords such as u16 are recognised.
func (cv *converter) codeIdentifier() {
	start := cv.in
	cv.in = cv.in.Advance(1).AdvanceWhile(isIdentPart)
	word := start.Span(cv.in)
	if IsKeyword(word) {
		cv.emitToken(TokenKeyword, word)
		return
	}
	cv.emitToken(TokenIdentifier, word)
}

func (cv *converter) codeString() error {
	start := cv.in
	cv.in = cv.in.Advance(1)
	for {
		c, ok := cv.in.Peek(0)
		if !ok {
			return failAt(start, ErrUnterminatedString)
		}
		switch c {
		case '"':
			cv.in = cv.in.Advance(1)
			cv.emitToken(TokenString, start.Span(cv.in))
			return nil
		case '\\':
			// the escaped byte plus at least one more must follow
			if cv.in.Len() < 3 {
				return failAt(cv.in, ErrDanglingEscape)
			}
			cv.in = cv.in.Advance(2)
		default:
			cv.in = cv.in.Advance(1)
		}
	}
}

func (cv *converter) codeNumber() error {
	start := cv.in
	if x, ok := cv.in.Peek(1); ok && cv.in.Is(0, '0') && x|0x20 == 'x' {
		cv.in = cv.in.Advance(2)
		if !cv.skipRun(isHexDigit) {
			return failAt(start, ErrMalformedNumber)
		}
		cv.emitToken(TokenNumber, start.Span(cv.in))
		return nil
	}
	cv.skipRun(isDigit)
	if cv.in.Is(0, '.') {
		cv.in = cv.in.Advance(1)
		if !cv.skipRun(isDigit) {
			return failAt(start, ErrMalformedNumber)
		}
	}
	if c, ok := cv.in.Peek(0); ok && c|0x20 == 'e' {
		cv.in = cv.in.Advance(1)
		if cv.in.Is(0, '+') || cv.in.Is(0, '-') {
			cv.in = cv.in.Advance(1)
		}
		if !cv.skipRun(isDigit) {
			return failAt(start, ErrMalformedNumber)
		}
	}
	if c, ok := cv.in.Peek(0); ok && c|0x20 == 'f' {
		cv.in = cv.in.Advance(1)
	}
	cv.emitToken(TokenNumber, start.Span(cv.in))
	return nil
}

// skipRun advances over bytes matching pred and reports whether any were consumed.
func (cv *converter) skipRun(pred func(byte) bool) bool {
	before := cv.in.Offset()
	cv.in = cv.in.AdvanceWhile(pred)
	return cv.in.Offset() > before
}

func (cv *converter) emitToken(kind TokenKind, lexeme []byte) {
	switch kind {
	case TokenKeyword, TokenNumber:
		cv.out.PushString(tokenOpenTags[kind])
		cv.out.PushBytes(lexeme)
		cv.out.PushString(spanCloseTag)
	case TokenString:
		cv.out.PushString(tokenOpenTags[kind])
		pushEscaped(cv.out, lexeme)
		cv.out.PushString(spanCloseTag)
	case TokenIdentifier:
		cv.out.PushBytes(lexeme)
	default:
		pushEscaped(cv.out, lexeme)
	}
}
