package source

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Reference locates the data block of a sheet.
type Reference struct {
	// Sheet is the sheet name.
	Sheet string
	// Row is the first data row (1-based).
	Row int
	// Col is the first data column (1-based).
	Col int
}

// ParseReference parses a source name. Plain names ("Gems") start at A2,
// leaving row 1 as the header. Qualified names ("'Landing Page'!B3" or
// "Gems!$A$2") name the top-left data cell explicitly.
func ParseReference(name string) Reference {
	ref := Reference{Sheet: name, Row: 2, Col: 1}

	idx := strings.LastIndex(name, "!")
	if idx < 0 {
		return ref
	}

	cell := strings.ReplaceAll(name[idx+1:], "$", "")
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		// "!" is part of the sheet name.
		return ref
	}

	ref.Sheet = strings.Trim(name[:idx], "'")
	ref.Row = row
	ref.Col = col
	return ref
}
