// Package markup converts a small lightweight markup language to HTML.
//
// Conversion is a single pass over the whole input. An inline dispatcher keeps
// a register of open styles and writes tags into a fixed-capacity Sink; fenced
// code blocks are re-lexed into keyword, string and number spans. Literal text
// is entity-encoded. Malformed input stops conversion with a *ParseError.
//
// Syntax:
//
//	*italic*  **bold**  ***bold italic***
//	__underline__  ~~strikethrough~~
//	# H1 ... ###### H6 (closed by the end of the line)
//	`raw text`
//	```if x == 0x1F return "ok"```
//	[link text](https://example.com)
//	\* escapes the next byte
//
// Example:
//
//	out := markup.NewSink(4096)
//	if err := markup.Convert([]byte("# Hello *world*\n"), out); err != nil {
//		log.Fatal(err)
//	}
//	if out.Clipped() {
//		log.Print("output truncated")
//	}
//	os.Stdout.Write(out.Bytes())
//
// Render and HTTPRender wrap Convert with input validation, front matter
// handling and an io.Writer destination. WriteDocument adds a standalone HTML
// shell styled by a Theme.
package markup
