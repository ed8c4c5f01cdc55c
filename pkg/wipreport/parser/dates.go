package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DisplayLayout is the week ending date display form, e.g. 07/04/2024.
const DisplayLayout = "01/02/2006"

// maxExcelSerial is the serial of 9999-12-31, the last date a workbook can hold.
const maxExcelSerial = 2958465

// date1904Offset is the number of days between the 1900 and 1904 date systems.
const date1904Offset = 1462

// dateLayouts are tried in order; ambiguous numeric forms read month first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"2006/01/02",
	"02-Jan-2006",
	"2-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a week ending cell value.
// Numeric values are treated as spreadsheet date serials, counted from 1904
// when date1904 is set; text is matched against the known layouts. It returns
// false for empty or unparseable input.
func ParseDate(s string, date1904 bool) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		limit := float64(maxExcelSerial)
		if date1904 {
			limit -= date1904Offset
		}
		if math.IsNaN(serial) || serial <= 0 || serial > limit {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, false
		}
		return t.Round(time.Second), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders t in DisplayLayout.
func FormatDate(t time.Time) string {
	return t.Format(DisplayLayout)
}
