package models

// Sheet names of the generated workbook, in output order.
const (
	SheetAll      = "All"
	SheetExperis  = "Experis"
	SheetManpower = "Manpower"
)

// SkippedRow records an input row dropped during normalization.
type SkippedRow struct {
	// Row is the 1-based row number in the uploaded worksheet.
	Row int `json:"row"`
	// Value is the raw week ending value that failed to parse.
	Value string `json:"value"`
}

// Views represents the three partitions of a normalized table.
type Views struct {
	// All contains every row with a valid week ending date.
	All Table `json:"all"`
	// Experis contains rows branded Experis.
	Experis Table `json:"experis"`
	// Manpower contains rows branded Manpower or Talent Solutions.
	Manpower Table `json:"manpower"`
	// Skipped lists rows dropped for an unparseable week ending date.
	Skipped []SkippedRow `json:"skipped,omitempty"`
}

// Tables returns the views in workbook sheet order.
func (v *Views) Tables() []Table {
	return []Table{v.All, v.Experis, v.Manpower}
}
