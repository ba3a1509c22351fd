package source

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
	"github.com/xuri/excelize/v2"
)

// Workbook reads rows from an xlsx file. The file is opened on every
// call, so edits to the workbook show up on the next request.
type Workbook struct {
	path string
}

// NewWorkbook returns a row source backed by the xlsx file at path.
func NewWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

// Path returns the workbook file path.
func (w *Workbook) Path() string {
	return w.path
}

// Rows implements RowSource.
func (w *Workbook) Rows(ctx context.Context, name string, columns int) ([]models.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	ref := ParseReference(name)
	if idx, err := f.GetSheetIndex(ref.Sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: sheet %q", ErrSourceNotFound, ref.Sheet)
	}

	raw, err := f.GetRows(ref.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", ref.Sheet, err)
	}

	return extractRows(raw, ref, columns), nil
}

// Sheets returns the sheet names of the workbook in tab order.
func (w *Workbook) Sheets(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// extractRows cuts the data block starting at ref out of the raw sheet
// rows and parses each cell.
func extractRows(raw [][]string, ref Reference, columns int) []models.Row {
	last := lastDataRow(raw)
	first := ref.Row - 1

	result := make([]models.Row, 0)
	for rowIdx := first; rowIdx <= last; rowIdx++ {
		cells := raw[rowIdx]
		values := make([]interface{}, 0, columns)
		for c := 0; c < columns; c++ {
			colIdx := ref.Col - 1 + c
			if colIdx >= len(cells) {
				break
			}
			values = append(values, parseValue(cells[colIdx]))
		}
		result = append(result, fitRow(values, columns))
	}

	return result
}

var (
	intPattern   = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	floatPattern = regexp.MustCompile(`^-?((0|[1-9][0-9]*)(\.[0-9]+)?|\.[0-9]+)([eE][-+]?[0-9]+)?$`)
)

// parseValue converts a formatted cell string into a typed value.
// Returns nil for empty cells, int64 for integers, float64 for decimals,
// bool for TRUE/FALSE, or the original string.
func parseValue(s string) interface{} {
	switch {
	case s == "":
		return nil
	case s == "TRUE":
		return true
	case s == "FALSE":
		return false
	}
	// Try integer first
	if intPattern.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	}
	// Try float
	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	// Return as string
	return s
}
