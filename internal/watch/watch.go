// Package watch re-runs a callback when watched files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before OnChange runs.
const DefaultDebounce = 200 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	Paths    []string
	Debounce time.Duration
	// OnChange receives the changed paths, sorted, as given in Paths.
	OnChange func(ctx context.Context, changed []string)
	Logger   *slog.Logger
}

// Watcher monitors a fixed set of files. Parent directories are watched
// rather than the files so editors that replace files on save keep working.
type Watcher struct {
	files    map[string]string // absolute path -> caller path
	debounce time.Duration
	onChange func(context.Context, []string)
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// New creates a watcher for cfg.Paths.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Paths) == 0 {
		return nil, fmt.Errorf("watch: no paths")
	}
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("watch: OnChange is nil")
	}
	w := &Watcher{
		files:    make(map[string]string, len(cfg.Paths)),
		debounce: cfg.Debounce,
		onChange: cfg.OnChange,
		logger:   cfg.Logger,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	dirs := make(map[string]struct{})
	for _, p := range cfg.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %s: %w", p, err)
		}
		w.files[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch: add %s: %w", dir, err)
		}
	}
	w.fsw = fsw
	return w, nil
}

// Run dispatches debounced change notifications until ctx is cancelled. The
// underlying watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]struct{})
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			name, ok := w.relevant(event)
			if !ok {
				continue
			}
			w.logger.Debug("file event", "path", name, "op", event.Op.String())
			pending[name] = struct{}{}
			stopTimer()
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			clear(pending)
			sort.Strings(changed)
			w.onChange(ctx, changed)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	name, ok := w.files[abs]
	return name, ok
}
