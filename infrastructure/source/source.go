// Package source turns external inputs (text files, spreadsheets) into the
// comma-separated data strings the chart tools accept, and watches them for
// changes.
package source

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// Source errors.
var (
	// ErrEmptySource indicates the input held no usable data.
	ErrEmptySource = errors.New("source has no data")

	// ErrSheetNotFound indicates the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
)

// Source produces a chart data string.
type Source interface {
	Read(ctx context.Context) (string, error)
}

// Literal is data given inline, such as a command-line argument.
type Literal string

// Read returns the literal unchanged.
func (l Literal) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(l), nil
}

// ForPath picks the source for a data file by extension: workbooks are read
// with Spreadsheet, anything else as text.
func ForPath(path, sheet string) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return NewSpreadsheet(path, sheet)
	default:
		return NewFile(path)
	}
}
