package source

import (
	"context"
	"fmt"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/models"
)

// Memory is a RowSource over in-memory data rows, keyed by sheet name.
// Stored rows hold data only; there is no header row.
type Memory struct {
	sheets map[string][]models.Row
}

// NewMemory returns a source serving the given sheets.
func NewMemory(sheets map[string][]models.Row) *Memory {
	return &Memory{sheets: sheets}
}

// Rows implements RowSource. Returned rows are copies.
func (m *Memory) Rows(ctx context.Context, name string, columns int) ([]models.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet := ParseReference(name).Sheet
	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: sheet %q", ErrSourceNotFound, sheet)
	}

	result := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		result = append(result, fitRow(row, columns))
	}
	return result, nil
}
