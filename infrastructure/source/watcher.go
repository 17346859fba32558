package source

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/felixgeelhaar/graphs/infrastructure/logging"
)

// DefaultDebounce is the quiet period used when none is given.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single file. Bursts of events, such as an
// editor writing a file in several steps, collapse into one notification.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors which replace the file on save are still observed.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch path: %w", err)
	}

	return &Watcher{path: absPath, debounce: debounce, fsw: fsw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange after each settled burst of changes until ctx is
// cancelled. Calls are sequential. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	defer func() { _ = w.fsw.Close() }()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange(ctx)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logging.Warn().
				Add(logging.Component("watcher")).
				Add(logging.Path(w.path)).
				Add(logging.ErrorField(err)).
				Msg("watch error")
		}
	}
}
