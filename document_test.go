package markup

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteDocument(t *testing.T) {
	var out bytes.Buffer
	err := WriteDocument(&out, DocumentRequest{
		Title: "Tom & Jerry",
		Body:  []byte(`<h1>Hi</h1>`),
	})
	if err != nil {
		t.Fatalf("write document: %v", err)
	}
	doc := out.String()
	for _, want := range []string{
		"<!DOCTYPE html>\n<html lang=\"en\">\n",
		"<meta charset=\"utf-8\">\n",
		"<title>Tom &amp; Jerry</title>\n",
		"<style>\n" + Stylesheet(DefaultTheme()) + "</style>\n",
		"<body>\n<h1>Hi</h1>\n</body>\n</html>\n",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestWriteDocumentPlain(t *testing.T) {
	plain, _ := ThemeByName("plain")
	var out bytes.Buffer
	err := WriteDocument(&out, DocumentRequest{Lang: "sv", Theme: plain, Body: []byte("x\n")})
	if err != nil {
		t.Fatalf("write document: %v", err)
	}
	want := "<!DOCTYPE html>\n<html lang=\"sv\">\n<head>\n<meta charset=\"utf-8\">\n</head>\n<body>\nx\n</body>\n</html>\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestWriteDocumentErrors(t *testing.T) {
	if err := WriteDocument(nil, DocumentRequest{}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if err := WriteDocument(failWriter{}, DocumentRequest{Body: []byte("x")}); err == nil {
		t.Fatalf("expected write error")
	}
}
