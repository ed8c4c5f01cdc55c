package models

import "time"

// Row represents one normalized output row.
type Row struct {
	// Values holds cell text in the owning table's column order.
	Values []string `json:"values"`
	// Kinds holds the source type of each value; missing entries are text.
	Kinds []CellKind `json:"kinds,omitempty"`
	// WeekEnding is the parsed week ending date.
	WeekEnding time.Time `json:"week_ending"`
	// SourceRow is the 1-based row number in the uploaded worksheet.
	SourceRow int `json:"source_row"`
}

// Table represents an ordered set of rows sharing one column layout.
type Table struct {
	// Name is the sheet name the table is written to.
	Name string `json:"name"`
	// Columns lists the header names in output order.
	Columns []string `json:"columns"`
	// Rows contains the data rows in output order.
	Rows []Row `json:"rows,omitempty"`
}

// ColumnIndex builds a header name to 0-based position lookup.
// The first occurrence wins when a header repeats.
func (t *Table) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return idx
}

// Value returns the cell at column col of row r, or "" when out of range.
func (r Row) Value(col int) string {
	if col < 0 || col >= len(r.Values) {
		return ""
	}
	return r.Values[col]
}

// Kind returns the source type of column col of r.
func (r Row) Kind(col int) CellKind {
	if col < 0 || col >= len(r.Kinds) {
		return KindText
	}
	return r.Kinds[col]
}
