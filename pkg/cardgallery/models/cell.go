// Package models defines the row and view-model types of the card gallery.
package models

// Row represents one data row read from a sheet.
// Each element is a cell value: nil (empty), string, int64, float64 or bool.
type Row []interface{}

// Cell returns the value at the 0-based column index, or nil when the row
// is shorter than idx+1.
func (r Row) Cell(idx int) interface{} {
	if idx < 0 || idx >= len(r) {
		return nil
	}
	return r[idx]
}
