package writer

import (
	"unicode/utf8"

	"github.com/ukaji3/wipreport-go/pkg/wipreport/models"
)

// MaxColumnWidth is the widest column a worksheet accepts.
const MaxColumnWidth = 255

// widthPadding is added to the longest value of every column.
const widthPadding = 2

// ColumnWidths returns one width per column of t: the longest value as
// written to the sheet, header included, plus padding.
func ColumnWidths(t *models.Table) []float64 {
	dateCol, hasDate := t.ColumnIndex()[models.ColumnWeekEnding]

	widths := make([]float64, len(t.Columns))
	for c, header := range t.Columns {
		longest := utf8.RuneCountInString(header)
		for _, row := range t.Rows {
			_, text := cellValue(row, c, hasDate && c == dateCol)
			if n := utf8.RuneCountInString(text); n > longest {
				longest = n
			}
		}
		widths[c] = float64(min(longest+widthPadding, MaxColumnWidth))
	}
	return widths
}
