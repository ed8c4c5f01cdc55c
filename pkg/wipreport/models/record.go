// Package models defines data structures for the Unbilled WIP report.
package models

// CellKind is the value type a cell had in the uploaded workbook.
type CellKind int

const (
	// KindText cells are written back as strings. It is the zero value, so
	// backfilled and derived cells are text.
	KindText CellKind = iota
	// KindNumber cells held a numeric value.
	KindNumber
	// KindBool cells held TRUE or FALSE.
	KindBool
)

// Cell is one input value with its source type.
type Cell struct {
	Value string
	Kind  CellKind
}

// Record represents a single input row keyed by column header.
type Record map[string]Cell

// RawTable represents the tabular content of an uploaded worksheet.
type RawTable struct {
	// SheetName is the worksheet the table was read from.
	SheetName string
	// Date1904 is set when the workbook counts date serials from 1904.
	Date1904 bool
	// Columns lists the header names in their original order.
	Columns []string
	// Records contains one entry per non-empty data row.
	Records []Record
	// RowNumbers maps each record to its 1-based row in the worksheet.
	RowNumbers []int
}

// HasColumn reports whether the table carries the named header.
func (t *RawTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
