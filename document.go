package markup

import (
	"bufio"
	"fmt"
	"io"
)

// DocumentRequest configures WriteDocument.
type DocumentRequest struct {
	Title string
	Lang  string
	Theme Theme
	Body  []byte
}

// WriteDocument wraps an HTML fragment in a standalone document with the
// theme stylesheet inlined. Body is written verbatim.
func WriteDocument(w io.Writer, req DocumentRequest) error {
	if w == nil {
		return fmt.Errorf("document: writer is nil")
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	lang := req.Lang
	if lang == "" {
		lang = "en"
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("<!DOCTYPE html>\n<html lang=\"")
	bw.WriteString(Escape(lang))
	bw.WriteString("\">\n<head>\n<meta charset=\"utf-8\">\n")
	if req.Title != "" {
		bw.WriteString("<title>")
		bw.WriteString(Escape(req.Title))
		bw.WriteString("</title>\n")
	}
	if css := Stylesheet(theme); css != "" {
		bw.WriteString("<style>\n")
		bw.WriteString(css)
		bw.WriteString("</style>\n")
	}
	bw.WriteString("</head>\n<body>\n")
	bw.Write(req.Body)
	if n := len(req.Body); n > 0 && req.Body[n-1] != '\n' {
		bw.WriteByte('\n')
	}
	bw.WriteString("</body>\n</html>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("document: write: %w", err)
	}
	return nil
}
