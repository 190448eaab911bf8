package markup

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the metadata block found ahead of the markup body.
type FrontMatter struct {
	// Format is "yaml", "toml" or "json", or empty when no block was found.
	Format string
	Raw    []byte
	Title  string
	Fields map[string]any
}

var frontMatterDelims = []struct {
	delim  []byte
	format string
}{
	{[]byte("---"), "yaml"},
	{[]byte("+++"), "toml"},
	{[]byte(";;;"), "json"},
}

// SplitFrontMatter separates a leading front matter block from the body.
// YAML and JSON blocks are decoded into Fields; TOML blocks are only stripped.
// Input without a front matter block is returned unchanged.
func SplitFrontMatter(src []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter
	openLine, next := nextLine(src, 0)
	delim, format, ok := parseOpeningFrontMatterDelimiter(openLine)
	if !ok {
		return fm, src, nil
	}
	secondLine, _ := nextLine(src, next)
	if !frontMatterMetadataLikely(secondLine) {
		return fm, src, nil
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, next, delim)
	if !found {
		return fm, src, nil
	}
	fm.Format = format
	fm.Raw = src[next:closeStart]
	if format != "toml" {
		if err := yaml.Unmarshal(fm.Raw, &fm.Fields); err != nil {
			return fm, src, fmt.Errorf("front matter: %w", err)
		}
		if title, ok := fm.Fields["title"].(string); ok {
			fm.Title = title
		}
	}
	return fm, src[closeNext:], nil
}

func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, string, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	for _, d := range frontMatterDelims {
		if bytes.Equal(trimmed, d.delim) {
			return d.delim, d.format, true
		}
	}
	return nil, "", false
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns the offset of the closing delimiter
// line and the offset just past it.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
