package parser

// TableBounds holds the 0-based bounding box of non-empty cells in a sheet.
type TableBounds struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// DetectTable finds the region of rows holding data.
// It returns false when every cell is empty.
func DetectTable(rows [][]string) (TableBounds, bool) {
	if len(rows) == 0 {
		return TableBounds{}, false
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return TableBounds{}, false
	}

	return TableBounds{
		MinRow: minRow,
		MaxRow: maxRow,
		MinCol: minCol,
		MaxCol: maxCol,
	}, true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
