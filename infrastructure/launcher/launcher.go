// Package launcher opens rendered documents with the desktop's default
// application.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/browser"

	"github.com/felixgeelhaar/graphs/domain/artifact"
)

// Browser opens files through the OS handler (xdg-open, open or start).
type Browser struct {
	openFile func(path string) error
	output   io.Writer
}

// Option configures a Browser.
type Option func(*Browser)

// WithOpenFunc replaces the function used to open a path.
func WithOpenFunc(fn func(path string) error) Option {
	return func(b *Browser) {
		b.openFile = fn
	}
}

// WithOutput sends this Browser's opener process stdout and stderr to w.
// The default is os.Stderr so a stdio host's protocol stream is never
// written to.
func WithOutput(w io.Writer) Option {
	return func(b *Browser) {
		b.output = w
	}
}

// browserMu serializes opens, since pkg/browser takes its process output
// from package variables.
var browserMu sync.Mutex

// NewBrowser creates a Browser.
func NewBrowser(opts ...Option) *Browser {
	b := &Browser{openFile: browser.OpenFile, output: os.Stderr}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open launches the default viewer for path and waits for the launcher
// command to exit.
func (b *Browser) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.open(path); err != nil {
		return fmt.Errorf("%w: %s: %w", artifact.ErrOpenFailed, path, err)
	}
	return nil
}

func (b *Browser) open(path string) error {
	browserMu.Lock()
	defer browserMu.Unlock()

	stdout, stderr := browser.Stdout, browser.Stderr
	browser.Stdout, browser.Stderr = b.output, b.output
	defer func() {
		browser.Stdout, browser.Stderr = stdout, stderr
	}()

	return b.openFile(path)
}

// Noop is an opener that does nothing. It backs --no-open.
type Noop struct{}

// Open returns nil.
func (Noop) Open(context.Context, string) error {
	return nil
}

// Recorder remembers every path it is asked to open and optionally fails.
type Recorder struct {
	mu    sync.Mutex
	paths []string
	Err   error
}

// Open records path and returns r.Err.
func (r *Recorder) Open(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return r.Err
}

// Paths returns the recorded paths in call order.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

var (
	_ artifact.Opener = (*Browser)(nil)
	_ artifact.Opener = Noop{}
	_ artifact.Opener = (*Recorder)(nil)
)
