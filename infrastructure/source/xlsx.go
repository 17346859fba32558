package source

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

// Spreadsheet reads chart data from the first two columns of a worksheet.
//
// When the second column holds any number the sheet is read as x:y pairs,
// otherwise the first column is read as a flat value list. Rows whose cells
// are not numeric, such as headers, are skipped.
type Spreadsheet struct {
	Path string

	// Sheet selects the worksheet. Empty means the first sheet.
	Sheet string
}

// NewSpreadsheet creates a spreadsheet source.
func NewSpreadsheet(path, sheet string) *Spreadsheet {
	return &Spreadsheet{Path: path, Sheet: sheet}
}

// Read returns the worksheet content as a data string.
func (s *Spreadsheet) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("open workbook %s: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	sheet, err := s.resolveSheet(f)
	if err != nil {
		return "", err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	data := encodeRows(rows)
	if data == "" {
		return "", fmt.Errorf("%s!%s: %w", s.Path, sheet, ErrEmptySource)
	}
	return data, nil
}

func (s *Spreadsheet) resolveSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%s: %w", s.Path, ErrSheetNotFound)
	}
	if s.Sheet == "" {
		return sheets[0], nil
	}
	if !slices.Contains(sheets, s.Sheet) {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, s.Sheet)
	}
	return s.Sheet, nil
}

// encodeRows converts worksheet rows into a data string.
func encodeRows(rows [][]string) string {
	pairs := false
	for _, row := range rows {
		if _, ok := cell(row, 1); ok {
			pairs = true
			break
		}
	}

	tokens := make([]string, 0, len(rows))
	for _, row := range rows {
		x, ok := cell(row, 0)
		if !ok {
			continue
		}
		if !pairs {
			tokens = append(tokens, format(x))
			continue
		}
		y, ok := cell(row, 1)
		if !ok {
			continue
		}
		tokens = append(tokens, format(x)+":"+format(y))
	}
	return strings.Join(tokens, ",")
}

func cell(row []string, i int) (float64, bool) {
	if i >= len(row) {
		return 0, false
	}
	return chart.ParseNumber(row[i])
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var _ Source = (*Spreadsheet)(nil)
