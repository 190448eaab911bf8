package markup

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderFragment(t *testing.T) {
	var out bytes.Buffer
	res, err := Render(RenderRequest{
		Reader: strings.NewReader("# Hi\n*there*"),
		Writer: &out,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<h1>Hi</h1>\n<em class=\"italic\">there</em>"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
	if res.Written != len(want) || res.Clipped {
		t.Fatalf("result %+v", res)
	}
}

func TestRenderNilEndpoints(t *testing.T) {
	if _, err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if _, err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestRenderWritesNothingOnParseError(t *testing.T) {
	var out bytes.Buffer
	_, err := Render(RenderRequest{
		Reader: strings.NewReader("fine\n[broken"),
		Writer: &out,
	})
	if !errors.Is(err, ErrUnterminatedLinkText) {
		t.Fatalf("got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("partial output written: %q", out.String())
	}
}

func TestRenderFrontMatter(t *testing.T) {
	src := "---\ntitle: Hello\ntags: a b\n---\n*x*"
	var out bytes.Buffer
	res, err := Render(RenderRequest{Reader: strings.NewReader(src), Writer: &out})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.String() != `<em class="italic">x</em>` {
		t.Fatalf("got %q", out.String())
	}
	if res.FrontMatter.Format != "yaml" || res.FrontMatter.Title != "Hello" {
		t.Fatalf("front matter %+v", res.FrontMatter)
	}

	out.Reset()
	res, err = Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Options: []RenderOption{WithFrontMatter(false)},
	})
	if err != nil {
		t.Fatalf("render without front matter: %v", err)
	}
	want := "---\ntitle: Hello\ntags: a b\n---\n" + `<em class="italic">x</em>`
	if res.FrontMatter.Format != "" || out.String() != want {
		t.Fatalf("front matter should pass through, got %q", out.String())
	}
}

func TestRenderFrontMatterDisabledParsesBlockAsMarkup(t *testing.T) {
	src := "---\ntags: [a, b]\n---\n*x*"
	_, err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &bytes.Buffer{},
		Options: []RenderOption{WithFrontMatter(false)},
	})
	var perr *ParseError
	if !errors.As(err, &perr) || !errors.Is(err, ErrMissingLinkParen) {
		t.Fatalf("expected missing paren, got %v", err)
	}
	if perr.Offset != strings.Index(src, "]")+1 {
		t.Fatalf("offset %d", perr.Offset)
	}
}

func TestRenderErrorOffsetIncludesFrontMatter(t *testing.T) {
	src := "---\ntitle: t\n---\n*x"
	_, err := Render(RenderRequest{Reader: strings.NewReader(src), Writer: &bytes.Buffer{}})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if perr.Offset != len(src) {
		t.Fatalf("offset=%d want %d", perr.Offset, len(src))
	}
	if line, col := perr.Position([]byte(src)); line != 4 || col != 3 {
		t.Fatalf("position=%d:%d want 4:3", line, col)
	}
}

func TestRenderCapacity(t *testing.T) {
	var out bytes.Buffer
	res, err := Render(RenderRequest{
		Reader:  strings.NewReader("abcdef"),
		Writer:  &out,
		Options: []RenderOption{WithCapacity(4)},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !res.Clipped || res.Written != 4 || out.String() != "abcd" {
		t.Fatalf("result %+v out %q", res, out.String())
	}

	out.Reset()
	_, err = Render(RenderRequest{
		Reader:  strings.NewReader("abcdef"),
		Writer:  &out,
		Options: []RenderOption{WithCapacity(4), WithStrictCapacity(true)},
	})
	if !errors.Is(err, ErrClipped) {
		t.Fatalf("got %v want ErrClipped", err)
	}
	if out.Len() != 0 {
		t.Fatalf("strict capacity should write nothing, got %q", out.String())
	}
}

func TestRenderPooledSinkIsReset(t *testing.T) {
	for i := 0; i < 3; i++ {
		var out bytes.Buffer
		res, err := Render(RenderRequest{
			Reader:  strings.NewReader("0123456789"),
			Writer:  &out,
			Options: []RenderOption{WithCapacity(5)},
		})
		if err != nil || !res.Clipped {
			t.Fatalf("clipped run: %+v %v", res, err)
		}
		out.Reset()
		res, err = Render(RenderRequest{Reader: strings.NewReader("ok"), Writer: &out})
		if err != nil || res.Clipped || out.String() != "ok" {
			t.Fatalf("run after clip: %+v %v %q", res, err, out.String())
		}
	}
}

func TestRenderValidation(t *testing.T) {
	_, err := Render(RenderRequest{Reader: strings.NewReader("bad \xff"), Writer: &bytes.Buffer{}})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("got %v want ErrInvalidUTF8", err)
	}
}

func TestHTTPRender(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("## remote **doc**"))
	}))
	defer server.Close()

	var out bytes.Buffer
	res, err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    server.URL + "/doc.mu",
		Client: server.Client(),
		Writer: &out,
	})
	if err != nil {
		t.Fatalf("http render: %v", err)
	}
	want := `<h2>remote <b class="bold">doc</b></h2>`
	if out.String() != want || res.Written != len(want) {
		t.Fatalf("got %q (%d bytes)", out.String(), res.Written)
	}

	_, err = HTTPRender(context.Background(), HTTPRenderRequest{URL: server.URL + "/missing", Writer: &out})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPRenderRequestValidation(t *testing.T) {
	ctx := context.Background()
	if _, err := HTTPRender(ctx, HTTPRenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for empty URL")
	}
	if _, err := HTTPRender(ctx, HTTPRenderRequest{URL: "http://example.com"}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if _, err := HTTPRender(ctx, HTTPRenderRequest{URL: "ftp://example.com/x", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}

func TestHTTPRenderCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := HTTPRender(ctx, HTTPRenderRequest{URL: server.URL, Writer: &bytes.Buffer{}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v want context.Canceled", err)
	}
}

func TestSinkPoolDropsLargeBuffers(t *testing.T) {
	small := getSink(64)
	if cap(small.buf) < 64 || len(small.buf) != 0 {
		t.Fatalf("small sink cap=%d len=%d", cap(small.buf), len(small.buf))
	}
	if !putSink(small) {
		t.Fatalf("small sink should be pooled")
	}
	large := getSink(MaxOutputSize(1 << 20))
	if cap(large.buf) != MaxOutputSize(1<<20) {
		t.Fatalf("large sink cap=%d", cap(large.buf))
	}
	if putSink(large) {
		t.Fatalf("sink of %d bytes should not be pooled", cap(large.buf))
	}
}
