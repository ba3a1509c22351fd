package source

// lastDataRow returns the 0-based index of the last row holding a
// non-empty cell, or -1 if every row is blank.
func lastDataRow(rows [][]string) int {
	for rowIdx := len(rows) - 1; rowIdx >= 0; rowIdx-- {
		for _, cell := range rows[rowIdx] {
			if cell != "" {
				return rowIdx
			}
		}
	}
	return -1
}
