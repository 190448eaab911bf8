package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/markup"
	"pkt.systems/markup/internal/config"
	"pkt.systems/markup/internal/fragment"
	"pkt.systems/markup/internal/watch"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/markup")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	outPath        string
	capacity       int
	strictCapacity bool
	standalone     bool
	themeName      string
	title          string
	lang           string
	frontMatter    bool
	noValidate     bool
	check          bool
	watch          bool
	theme          markup.Theme
}

type app struct {
	opts   options
	inputs []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		opts        options
		listThemes  bool
		configPath  string
		verbose     bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("markup", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.IntVarP(&opts.capacity, "capacity", "c", 0, "Output capacity in bytes (0 never clips)")
	flags.BoolVar(&opts.strictCapacity, "strict-capacity", false, "Fail instead of clipping output at --capacity")
	flags.BoolVarP(&opts.standalone, "standalone", "s", false, "Wrap the fragment in a complete HTML document")
	flags.StringVarP(&opts.themeName, "theme", "t", "", "Theme for --standalone documents")
	flags.StringVar(&opts.title, "title", "", "Document title (defaults to the front matter title)")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&opts.frontMatter, "front-matter", true, "Strip a leading front matter block")
	flags.BoolVar(&opts.noValidate, "no-validate", false, "Skip UTF-8 and binary input checks")
	flags.BoolVar(&opts.check, "check", false, "Verify the produced fragment has balanced tags")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Re-render when input files change (requires --output)")
	flags.StringVar(&configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: markup [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nInputs are files, file:// or http(s):// URLs. If none is given, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if listThemes {
		printThemes(stdout)
		return 0
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(stderr, "env: %v\n", err)
		return 1
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	mergeConfig(flags, &opts, cfg)
	logger.Debug("settings", "theme", opts.themeName, "capacity", opts.capacity, "standalone", opts.standalone)

	if opts.capacity < 0 {
		fmt.Fprintln(stderr, "--capacity must be >= 0")
		return 2
	}
	theme, ok := markup.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return 2
	}
	opts.theme = theme

	a := &app{
		opts:   opts,
		inputs: flags.Args(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
	if opts.watch {
		return a.watchLoop(ctx)
	}
	if src, err := a.renderOnce(ctx); err != nil {
		a.reportError(src, err)
		return 1
	}
	return 0
}

// mergeConfig fills options not given on the command line from cfg.
func mergeConfig(flags *pflag.FlagSet, opts *options, cfg config.Config) {
	if !flags.Changed("theme") {
		opts.themeName = cfg.Theme
	}
	if !flags.Changed("capacity") {
		opts.capacity = cfg.Capacity
	}
	if !flags.Changed("standalone") {
		opts.standalone = cfg.Standalone
	}
	if !flags.Changed("title") {
		opts.title = cfg.Title
	}
	if !flags.Changed("front-matter") {
		opts.frontMatter = cfg.StripFrontMatter()
	}
	opts.lang = cfg.Lang
}

func (a *app) renderOptions() []markup.RenderOption {
	return []markup.RenderOption{
		markup.WithCapacity(a.opts.capacity),
		markup.WithStrictCapacity(a.opts.strictCapacity),
		markup.WithFrontMatter(a.opts.frontMatter),
		markup.WithValidation(!a.opts.noValidate),
	}
}

// renderOnce converts all inputs and writes the result. The returned source is
// the concatenated input, for diagnostics.
func (a *app) renderOnce(ctx context.Context) ([]byte, error) {
	reader, closer, err := openInputs(ctx, a.inputs, a.stdin)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	src, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var frag bytes.Buffer
	res, err := markup.Render(markup.RenderRequest{
		Reader:  bytes.NewReader(src),
		Writer:  &frag,
		Options: a.renderOptions(),
	})
	if err != nil {
		return src, err
	}
	if res.Clipped {
		a.logger.Warn("output clipped", "capacity", a.opts.capacity, "bytes", res.Written)
	}
	if res.FrontMatter.Format != "" {
		a.logger.Debug("front matter stripped", "format", res.FrontMatter.Format, "title", res.FrontMatter.Title)
	}
	if a.opts.check {
		if err := fragment.Check(bytes.NewReader(frag.Bytes())); err != nil {
			return src, fmt.Errorf("check: %w", err)
		}
	}

	writer, closeOut, err := resolveOutput(a.opts.outPath, a.stdout)
	if err != nil {
		return src, fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if a.opts.standalone {
		title := a.opts.title
		if title == "" {
			title = res.FrontMatter.Title
		}
		err = markup.WriteDocument(writer, markup.DocumentRequest{
			Title: title,
			Lang:  a.opts.lang,
			Theme: a.opts.theme,
			Body:  frag.Bytes(),
		})
	} else {
		_, err = writer.Write(frag.Bytes())
	}
	if err != nil {
		return src, fmt.Errorf("write output: %w", err)
	}
	a.logger.Debug("rendered", "bytes", res.Written, "clipped", res.Clipped)
	return src, nil
}

func (a *app) reportError(src []byte, err error) {
	fmt.Fprintln(a.stderr, markup.FormatError(src, err, diagnosticWidth(a.stderr)))
}

func (a *app) watchLoop(ctx context.Context) int {
	if strings.TrimSpace(a.opts.outPath) == "" {
		fmt.Fprintln(a.stderr, "--watch requires --output")
		return 2
	}
	if len(a.inputs) == 0 {
		fmt.Fprintln(a.stderr, "--watch requires file inputs")
		return 2
	}
	paths := make([]string, 0, len(a.inputs))
	for _, raw := range a.inputs {
		path, ok := localPath(raw)
		if !ok {
			fmt.Fprintf(a.stderr, "--watch cannot follow %s\n", raw)
			return 2
		}
		paths = append(paths, path)
	}

	rebuild := func(ctx context.Context, changed []string) {
		src, err := a.renderOnce(ctx)
		if err != nil {
			a.logger.Error("render failed", "path", strings.Join(changed, ","), "error", err)
			a.reportError(src, err)
			return
		}
		a.logger.Info("rendered", "path", strings.Join(changed, ","), "output", a.opts.outPath)
	}

	w, err := watch.New(watch.Config{
		Paths:    paths,
		OnChange: rebuild,
		Logger:   a.logger,
	})
	if err != nil {
		fmt.Fprintf(a.stderr, "%v\n", err)
		return 1
	}
	rebuild(ctx, paths)
	a.logger.Info("watching", "inputs", len(paths))
	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(a.stderr, "%v\n", err)
		return 1
	}
	return 0
}

func printThemes(w io.Writer) {
	for _, name := range markup.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

// diagnosticWidth returns the column budget for error reports written to w.
func diagnosticWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// inputChain reads the named inputs back to back. Each input is opened only
// once the previous one is drained.
type inputChain struct {
	ctx   context.Context
	names []string
	cur   io.ReadCloser
	err   error
}

func (c *inputChain) Read(p []byte) (int, error) {
	for c.err == nil {
		if c.cur == nil {
			if len(c.names) == 0 {
				c.err = io.EOF
				break
			}
			rc, err := openInput(c.ctx, c.names[0])
			if err != nil {
				c.err = err
				break
			}
			c.cur, c.names = rc, c.names[1:]
		}
		n, err := c.cur.Read(p)
		if err == io.EOF {
			_ = c.cur.Close()
			c.cur = nil
			if n == 0 {
				continue
			}
			err = nil
		}
		return n, err
	}
	return 0, c.err
}

func (c *inputChain) Close() error {
	c.names = nil
	if c.err == nil {
		c.err = os.ErrClosed
	}
	if c.cur == nil {
		return nil
	}
	err := c.cur.Close()
	c.cur = nil
	return err
}

// openInputs concatenates the inputs named by args, or returns stdin when
// there are none.
func openInputs(ctx context.Context, args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	names := make([]string, 0, len(args))
	for _, raw := range args {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil, errors.New("empty input argument")
		}
		names = append(names, raw)
	}
	c := &inputChain{ctx: ctx, names: names}
	return c, c, nil
}

// openInput opens a local path, a file:// URL or an http(s) URL.
func openInput(ctx context.Context, raw string) (io.ReadCloser, error) {
	path, ok := localPath(raw)
	if !ok {
		return openURL(ctx, raw)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// localPath resolves a path or file:// URL to an absolute path, expanding a
// leading ~. It reports false for any other URL scheme.
func localPath(raw string) (string, bool) {
	path := strings.TrimSpace(raw)
	// a single-letter scheme is a Windows drive
	if u, err := url.Parse(path); err == nil && len(u.Scheme) > 1 {
		if !strings.EqualFold(u.Scheme, "file") {
			return "", false
		}
		path = u.Path
		if path == "" {
			path = u.Host
		}
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok && (rest == "" || rest[0] == '/') {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, true
}

func openURL(ctx context.Context, raw string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, nil
}

// resolveOutput returns stdout for an empty path. Otherwise it creates the
// file at path along with any missing parent directories.
func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	dst, ok := localPath(path)
	if !ok {
		return nil, nil, fmt.Errorf("output %s is not a local path", path)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(dst)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
