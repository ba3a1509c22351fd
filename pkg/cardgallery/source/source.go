// Package source provides the tabular row sources gallery pages read from.
package source

import (
	"context"
	"errors"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
)

// ErrSourceNotFound indicates the named sheet does not exist.
var ErrSourceNotFound = errors.New("source not found")

// RowSource returns the data rows of a named sheet.
//
// Rows are returned in sheet order, starting below the header, each
// fitted to exactly columns cells. A sheet without data rows yields an
// empty slice and no error; a missing sheet yields ErrSourceNotFound.
type RowSource interface {
	Rows(ctx context.Context, name string, columns int) ([]models.Row, error)
}

// fitRow pads or truncates cells to the requested width.
func fitRow(cells []interface{}, columns int) models.Row {
	row := make(models.Row, columns)
	copy(row, cells)
	return row
}
