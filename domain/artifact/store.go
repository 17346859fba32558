package artifact

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// ContentTypeSVG is the MIME type of rendered charts.
const ContentTypeSVG = "image/svg+xml"

// Store persists documents under fixed names. Saving a name that already
// exists replaces its content.
type Store interface {
	// Save writes content under name and returns its reference.
	Save(ctx context.Context, name string, content io.Reader) (Ref, error)

	// Retrieve opens the content stored under name.
	Retrieve(ctx context.Context, name string) (io.ReadCloser, error)

	// Exists checks if a document is stored under name.
	Exists(ctx context.Context, name string) (bool, error)
}

// Opener asks the host environment to display a persisted document.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, path string) error

// Open calls f.
func (f OpenerFunc) Open(ctx context.Context, path string) error {
	return f(ctx, path)
}

// ValidateName rejects names that are empty or would escape the store root.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}

// ContentTypeOf guesses a MIME type from the name's extension.
func ContentTypeOf(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return ContentTypeSVG
	}
	return "application/octet-stream"
}
