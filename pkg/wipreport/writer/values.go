package writer

import (
	"strconv"

	"github.com/ukaji3/wipreport-go/pkg/wipreport/models"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/parser"
)

// cellValue returns the value written for column c of row and the text that
// value holds in the sheet. Only cells that were numeric or boolean in the
// upload are retyped; everything else is written as the original string.
func cellValue(row models.Row, c int, isDate bool) (interface{}, string) {
	v := row.Value(c)
	if v == "" {
		return nil, ""
	}
	if isDate {
		return row.WeekEnding, v
	}

	switch row.Kind(c) {
	case models.KindNumber:
		switch n := parser.ParseValue(v).(type) {
		case int64:
			return n, strconv.FormatInt(n, 10)
		case float64:
			return n, strconv.FormatFloat(n, 'f', -1, 64)
		}
	case models.KindBool:
		return v == "TRUE", v
	}
	return v, v
}
