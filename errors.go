package markup

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrMismatchedEmphasis reports a close marker that does not match the open emphasis level.
	ErrMismatchedEmphasis = errors.New("mismatched emphasis close")
	// ErrNestedHeading reports a heading marker inside an open heading.
	ErrNestedHeading = errors.New("headings cannot be nested")
	// ErrHeadingSpace reports a heading marker run not followed by a space.
	ErrHeadingSpace = errors.New("missing space after heading marker")
	// ErrHeadingLevel reports a heading marker run longer than six.
	ErrHeadingLevel = errors.New("heading level too high")
	// ErrStyleOpen reports a raw span, code block or link started while a style is open.
	ErrStyleOpen = errors.New("style open before raw text, code block or link")
	// ErrUnterminatedRaw reports a raw span without a closing backtick.
	ErrUnterminatedRaw = errors.New("unterminated raw span")
	// ErrUnterminatedCode reports a code block without a closing fence.
	ErrUnterminatedCode = errors.New("unterminated code block")
	// ErrUnterminatedString reports a string literal without a closing quote.
	ErrUnterminatedString = errors.New("unterminated string literal")
	// ErrDanglingEscape reports a backslash with nothing to escape.
	ErrDanglingEscape = errors.New("missing character after backslash")
	// ErrMalformedNumber reports a numeric literal missing required digits: a
	// 0x or 0X prefix with no hex digit, a '.' with no digit after it, or an
	// exponent with no digit.
	ErrMalformedNumber = errors.New("malformed numeric literal")
	// ErrUnterminatedLinkText reports link text without a closing bracket.
	ErrUnterminatedLinkText = errors.New("unterminated link text")
	// ErrEmptyLinkText reports a link with no text.
	ErrEmptyLinkText = errors.New("empty link text")
	// ErrMissingLinkParen reports link text not followed by an opening parenthesis.
	ErrMissingLinkParen = errors.New("missing ( after link text")
	// ErrUnterminatedLinkDest reports a link destination without a closing parenthesis.
	ErrUnterminatedLinkDest = errors.New("unterminated link destination")
	// ErrEmptyLinkDest reports a link with no destination.
	ErrEmptyLinkDest = errors.New("empty link destination")
	// ErrUnterminatedStyle reports an emphasis, underline or strikethrough still open at end of input.
	ErrUnterminatedStyle = errors.New("unterminated style at end of input")
)

// ParseError is returned by Convert when the input is malformed.
type ParseError struct {
	Err    error
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Position returns the 1-based line and column (in runes) of the error within src.
func (e *ParseError) Position(src []byte) (line, col int) {
	off := e.Offset
	if off > len(src) {
		off = len(src)
	}
	if off < 0 {
		off = 0
	}
	head := src[:off]
	line = bytes.Count(head, []byte{'\n'}) + 1
	start := bytes.LastIndexByte(head, '\n') + 1
	col = utf8.RuneCount(head[start:]) + 1
	return line, col
}

func failAt(c Cursor, err error) error {
	return &ParseError{Err: err, Offset: c.Offset()}
}
