package writer

import "github.com/xuri/excelize/v2"

const (
	// HeaderFillColor is the RGB background of header cells.
	HeaderFillColor = "87CEEB"
	// DateNumFmt displays week ending dates as month/day/4-digit year.
	DateNumFmt = "mm/dd/yyyy"
)

// styleSet holds the style IDs registered on a workbook.
type styleSet struct {
	header int
	body   int
	date   int
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center"}
}

// newStyleSet registers the header, body and date styles on wb.
func newStyleSet(wb *excelize.File) (styleSet, error) {
	var s styleSet
	var err error

	s.header, err = wb.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{HeaderFillColor}, Pattern: 1},
		Alignment: centered(),
	})
	if err != nil {
		return s, err
	}

	s.body, err = wb.NewStyle(&excelize.Style{Alignment: centered()})
	if err != nil {
		return s, err
	}

	dateFmt := DateNumFmt
	s.date, err = wb.NewStyle(&excelize.Style{
		Alignment:    centered(),
		CustomNumFmt: &dateFmt,
	})
	return s, err
}
