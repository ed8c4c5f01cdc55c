package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/wipreport-go/pkg/wipreport/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoWorksheet indicates the workbook has no worksheet to read.
var ErrNoWorksheet = errors.New("workbook has no worksheet")

// ErrNoHeader indicates the worksheet has no non-empty row to use as header.
var ErrNoHeader = errors.New("worksheet has no header row")

// ReadTable reads the first worksheet of f into a RawTable.
// The first non-empty row is the header; fully empty rows below it are skipped.
// Cells are read raw so dates arrive as serial numbers rather than display
// text, and each value keeps the type its cell had.
func ReadTable(f *excelize.File) (*models.RawTable, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}
	sheetName := sheets[0]

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	bounds, ok := DetectTable(rows)
	if !ok {
		return nil, ErrNoHeader
	}

	table := &models.RawTable{SheetName: sheetName}
	if props.Date1904 != nil {
		table.Date1904 = *props.Date1904
	}

	// Map header positions; blank and repeated headers are ignored
	headerRow := rows[bounds.MinRow]
	colIdx := make([]int, 0, bounds.MaxCol-bounds.MinCol+1)
	seen := make(map[string]bool)
	for c := bounds.MinCol; c <= bounds.MaxCol && c < len(headerRow); c++ {
		name := strings.TrimSpace(headerRow[c])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		table.Columns = append(table.Columns, name)
		colIdx = append(colIdx, c)
	}

	for rowIdx := bounds.MinRow + 1; rowIdx <= bounds.MaxRow; rowIdx++ {
		row := rows[rowIdx]
		rec := make(models.Record, len(table.Columns))
		hasData := false

		for i, name := range table.Columns {
			value := cellAt(row, colIdx[i])
			if value == "" {
				rec[name] = models.Cell{}
				continue
			}
			hasData = true

			cell, err := readCell(f, sheetName, colIdx[i], rowIdx, value)
			if err != nil {
				return nil, err
			}
			rec[name] = cell
		}

		if hasData {
			table.Records = append(table.Records, rec)
			table.RowNumbers = append(table.RowNumbers, rowIdx+1)
		}
	}

	return table, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// readCell types the raw value at the 0-based position col, row.
// Cells without a type attribute hold numbers, including formula results.
func readCell(f *excelize.File, sheet string, col, row int, value string) (models.Cell, error) {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return models.Cell{}, err
	}
	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return models.Cell{}, err
	}

	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return models.Cell{Value: value, Kind: models.KindNumber}, nil
	case excelize.CellTypeBool:
		text := "FALSE"
		if value == "1" || strings.EqualFold(value, "TRUE") {
			text = "TRUE"
		}
		return models.Cell{Value: text, Kind: models.KindBool}, nil
	default:
		return models.Cell{Value: value, Kind: models.KindText}, nil
	}
}

// ParseValue attempts to parse the text of a numeric cell as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Values with a leading zero such as "00123" stay strings so codes keep their padding.
func ParseValue(s string) interface{} {
	if hasLeadingZero(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	// Return as string
	return s
}

func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}
