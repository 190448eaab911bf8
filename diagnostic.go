package markup

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const snippetIndent = 4

// FormatError describes err for a terminal. Parse errors are reported as
// line:col with the offending source line and a caret below the column; the
// result fits in width columns when width is positive. Other errors are
// returned as err.Error().
func FormatError(src []byte, err error, width int) string {
	if err == nil {
		return ""
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		return err.Error()
	}
	line, col := perr.Position(src)
	msg := fmt.Sprintf("%d:%d: %v", line, col, perr.Err)
	if width > 0 {
		msg = wordwrap.String(msg, width)
	}
	text := strings.ReplaceAll(sourceLine(src, perr.Offset), "\t", " ")
	snippet, caret := fitSnippet(text, col, width-snippetIndent)
	var b strings.Builder
	b.WriteString(msg)
	b.WriteByte('\n')
	b.WriteString(indent.String(snippet+"\n"+strings.Repeat(" ", caret-1)+"^", snippetIndent))
	return b.String()
}

func sourceLine(src []byte, off int) string {
	if off > len(src) {
		off = len(src)
	}
	start := bytes.LastIndexByte(src[:off], '\n') + 1
	end := len(src)
	if i := bytes.IndexByte(src[off:], '\n'); i >= 0 {
		end = off + i
	}
	return string(trimCR(src[start:end]))
}

// fitSnippet shortens text to limit columns keeping col visible and returns
// the caret column within the shortened text.
func fitSnippet(text string, col int, limit int) (string, int) {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return text, col
	}
	runes := []rune(text)
	if col > limit/2 && len(runes) > limit {
		shift := col - limit/2
		if shift > len(runes) {
			shift = len(runes)
		}
		text = "…" + string(runes[shift:])
		col = col - shift + 1
	}
	return truncate.StringWithTail(text, uint(limit), "…"), col
}
