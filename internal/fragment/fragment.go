// Package fragment inspects generated HTML fragments.
package fragment

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrUnbalanced reports a fragment whose start and end tags do not nest.
var ErrUnbalanced = errors.New("unbalanced tags")

var voidElements = map[string]struct{}{
	"br":   {},
	"hr":   {},
	"img":  {},
	"meta": {},
	"link": {},
	"wbr":  {},
}

// Check verifies that every start tag in the fragment is closed in order.
func Check(r io.Reader) error {
	z := html.NewTokenizer(r)
	var stack []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return err
			}
			if len(stack) > 0 {
				return fmt.Errorf("%w: <%s> not closed", ErrUnbalanced, stack[len(stack)-1])
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if _, ok := voidElements[string(name)]; ok {
				continue
			}
			stack = append(stack, string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				return fmt.Errorf("%w: unexpected </%s>", ErrUnbalanced, name)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// Text returns the fragment's text content with tags removed and entities
// decoded.
func Text(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return b.String(), nil
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// Links returns the href of every anchor in the fragment, in order.
func Links(r io.Reader) ([]string, error) {
	z := html.NewTokenizer(r)
	var links []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return links, nil
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "href" {
					links = append(links, string(val))
				}
			}
		}
	}
}
