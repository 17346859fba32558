package source

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// File reads chart data from a text file. Lines are treated as additional
// separators, so one value per line and "1,2,3" on a single line are
// equivalent.
type File struct {
	Path string
}

// NewFile creates a text file source.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Read returns the file content as a data string.
func (f *File) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// #nosec G304 -- path is supplied by the operator
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Path, err)
	}

	data := normalize(string(raw))
	if data == "" {
		return "", fmt.Errorf("%s: %w", f.Path, ErrEmptySource)
	}
	return data, nil
}

// normalize folds line breaks into commas and drops blank segments.
func normalize(raw string) string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	kept := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, ",")
}

var _ Source = (*File)(nil)
