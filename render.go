package markup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// ErrClipped reports output that exceeded the configured capacity when
// WithStrictCapacity is set.
var ErrClipped = errors.New("output clipped")

// maxPooledSink caps the buffer size kept in sinkPool. Larger sinks are left
// to the garbage collector so one big document does not pin its buffer.
const maxPooledSink = 1 << 20

var sinkPool = sync.Pool{
	New: func() any {
		return &Sink{}
	},
}

func getSink(capacity int) *Sink {
	sink := sinkPool.Get().(*Sink)
	if cap(sink.buf) < capacity {
		sink.buf = make([]byte, 0, capacity)
	}
	sink.buf = sink.buf[:0:capacity]
	sink.clipped = false
	return sink
}

// putSink returns sink to the pool unless its buffer exceeds maxPooledSink.
func putSink(sink *Sink) bool {
	if cap(sink.buf) > maxPooledSink {
		return false
	}
	sink.Reset()
	sinkPool.Put(sink)
	return true
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// RenderResult describes a completed Render.
type RenderResult struct {
	Written     int
	Clipped     bool
	FrontMatter FrontMatter
}

// Render reads the whole markup source from Reader and writes the HTML
// fragment to Writer. Nothing is written when conversion fails.
func Render(req RenderRequest) (RenderResult, error) {
	var res RenderResult
	if req.Reader == nil {
		return res, fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return res, fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return res, fmt.Errorf("render: read: %w", err)
	}
	return renderBytes(src, req.Writer, newRenderConfig(req.Options))
}

func renderBytes(src []byte, w io.Writer, cfg renderConfig) (RenderResult, error) {
	var res RenderResult
	if !cfg.skipValidation {
		if err := ValidateInput(src); err != nil {
			return res, fmt.Errorf("render: %w", err)
		}
	}
	body := src
	if cfg.frontMatter {
		fm, rest, err := SplitFrontMatter(src)
		if err != nil {
			return res, fmt.Errorf("render: %w", err)
		}
		res.FrontMatter = fm
		body = rest
	}
	capacity := cfg.capacity
	if capacity <= 0 {
		capacity = MaxOutputSize(len(body))
	}
	sink := getSink(capacity)
	defer putSink(sink)
	if err := Convert(body, sink); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			// report offsets against the original source, front matter included
			perr.Offset += len(src) - len(body)
		}
		return res, err
	}
	res.Clipped = sink.Clipped()
	if res.Clipped && cfg.strictCapacity {
		return res, fmt.Errorf("render: %w at %d bytes", ErrClipped, capacity)
	}
	n, err := sink.WriteTo(w)
	res.Written = int(n)
	if err != nil {
		return res, fmt.Errorf("render: write: %w", err)
	}
	return res, nil
}

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Options []RenderOption
}

// HTTPRender fetches markup over HTTP(S) and writes the HTML fragment.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) (RenderResult, error) {
	var res RenderResult
	if req.URL == "" {
		return res, fmt.Errorf("render http: URL is required")
	}
	if req.Writer == nil {
		return res, fmt.Errorf("render http: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return res, fmt.Errorf("render http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return res, fmt.Errorf("render http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return res, fmt.Errorf("render http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return res, fmt.Errorf("render http: status %s", resp.Status)
	}
	return Render(RenderRequest{
		Reader:  resp.Body,
		Writer:  req.Writer,
		Options: req.Options,
	})
}
