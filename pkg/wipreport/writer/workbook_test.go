package writer

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/models"
	"github.com/xuri/excelize/v2"
)

func schemaRow(values map[string]string, weekEnding time.Time) models.Row {
	columns := models.Schema()
	row := models.Row{Values: make([]string, len(columns)), WeekEnding: weekEnding}
	for i, c := range columns {
		row.Values[i] = values[c]
	}
	return row
}

// withKinds marks the named schema columns of row with a source type.
func withKinds(row models.Row, kinds map[string]models.CellKind) models.Row {
	columns := models.Schema()
	row.Kinds = make([]models.CellKind, len(columns))
	for i, c := range columns {
		row.Kinds[i] = kinds[c]
	}
	return row
}

func reportTables(allRows, experisRows, manpowerRows []models.Row) []models.Table {
	columns := models.Schema()
	return []models.Table{
		{Name: models.SheetAll, Columns: columns, Rows: allRows},
		{Name: models.SheetExperis, Columns: columns, Rows: experisRows},
		{Name: models.SheetManpower, Columns: columns, Rows: manpowerRows},
	}
}

func openResult(t *testing.T, res *Result) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(res.Content))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func styleOf(t *testing.T, f *excelize.File, sheet, cell string) *excelize.Style {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style
}

func TestWriteSheetsAndValues(t *testing.T) {
	july4 := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	row := schemaRow(map[string]string{
		"Brand":            "Experis",
		"Client Name":      "Acme",
		"Invoice Group":    "EB-M-PO",
		"Week ending date": "07/04/2024",
		"Contractor Name":  "Jane Doe",
		"Bill Rate":        "42.5",
		"Timesheet Code":   "00123",
	}, july4)
	row = withKinds(row, map[string]models.CellKind{"Bill Rate": models.KindNumber})

	res, err := Write(reportTables([]models.Row{row}, []models.Row{row}, nil), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	f := openResult(t, res)
	assert.Equal(t, []string{"All", "Experis", "Manpower"}, f.GetSheetList())

	for _, sheet := range []string{"All", "Experis"} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, models.Schema(), rows[0])

		v, err := f.GetCellValue(sheet, "A2")
		require.NoError(t, err)
		assert.Equal(t, "Experis", v)
		v, err = f.GetCellValue(sheet, "E2")
		require.NoError(t, err)
		assert.Equal(t, "Acme", v)
		v, err = f.GetCellValue(sheet, "C2")
		require.NoError(t, err)
		assert.Equal(t, "00123", v, "padded codes stay text")

		// Week ending is column J and holds a real date
		raw, err := f.GetCellValue(sheet, "J2", excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		serial, err := strconv.ParseFloat(raw, 64)
		require.NoError(t, err)
		got, err := excelize.ExcelDateToTime(serial, false)
		require.NoError(t, err)
		assert.Equal(t, "2024-07-04", got.Format("2006-01-02"))

		raw, err = f.GetCellValue(sheet, "N2", excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, "42.5", raw)
		assertNumeric(t, f, sheet, "N2")
	}

	rows, err := f.GetRows("Manpower")
	require.NoError(t, err)
	require.Len(t, rows, 1, "empty view keeps its header row")
	assert.Equal(t, models.Schema(), rows[0])
}

func assertNumeric(t *testing.T, f *excelize.File, sheet, cell string) {
	t.Helper()
	typ, err := f.GetCellType(sheet, cell)
	require.NoError(t, err)
	assert.Contains(t, []excelize.CellType{excelize.CellTypeUnset, excelize.CellTypeNumber}, typ, "%s!%s", sheet, cell)
}

func assertText(t *testing.T, f *excelize.File, sheet, cell string) {
	t.Helper()
	typ, err := f.GetCellType(sheet, cell)
	require.NoError(t, err)
	assert.Contains(t, []excelize.CellType{excelize.CellTypeSharedString, excelize.CellTypeInlineString}, typ, "%s!%s", sheet, cell)
}

func TestWriteKeepsTextCellsAsText(t *testing.T) {
	row := withKinds(schemaRow(map[string]string{
		"Timesheet ID":     "12345678901234567890",
		"Purchase Order":   "4500E12",
		"Job Order ID":     "1e3",
		"Bill Units":       "40",
		"Total Bill":       "1700.50",
		"Week ending date": "07/04/2024",
	}, time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)), map[string]models.CellKind{
		"Bill Units": models.KindNumber,
		"Total Bill": models.KindNumber,
	})

	res, err := Write(reportTables([]models.Row{row}, nil, nil), nil)
	require.NoError(t, err)
	f := openResult(t, res)

	tests := []struct {
		cell    string
		want    string
		numeric bool
	}{
		{"B2", "12345678901234567890", false},
		{"H2", "4500E12", false},
		{"I2", "1e3", false},
		{"M2", "40", true},
		{"O2", "1700.5", true},
	}
	for _, tt := range tests {
		raw, err := f.GetCellValue("All", tt.cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, tt.want, raw, tt.cell)
		if tt.numeric {
			assertNumeric(t, f, "All", tt.cell)
		} else {
			assertText(t, f, "All", tt.cell)
		}
	}
}

func TestWriteBoolCells(t *testing.T) {
	columns := []string{"Approved", "Week ending date"}
	row := models.Row{
		Values:     []string{"TRUE", "07/04/2024"},
		Kinds:      []models.CellKind{models.KindBool, models.KindText},
		WeekEnding: time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
	}

	res, err := Write([]models.Table{{Name: "All", Columns: columns, Rows: []models.Row{row}}}, nil)
	require.NoError(t, err)
	f := openResult(t, res)

	typ, err := f.GetCellType("All", "A2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeBool, typ)
	v, err := f.GetCellValue("All", "A2")
	require.NoError(t, err)
	assert.Equal(t, "TRUE", v)
}

func TestWriteFormatting(t *testing.T) {
	row := schemaRow(map[string]string{
		"Week ending date": "01/05/2024",
		"Contractor Name":  "Jane Doe",
	}, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

	res, err := Write(reportTables([]models.Row{row}, nil, nil), nil)
	require.NoError(t, err)
	f := openResult(t, res)

	for _, sheet := range []string{"All", "Experis", "Manpower"} {
		header := styleOf(t, f, sheet, "A1")
		require.NotEmpty(t, header.Fill.Color)
		assert.True(t, strings.HasSuffix(strings.ToUpper(header.Fill.Color[0]), HeaderFillColor), header.Fill.Color[0])
		assert.Equal(t, 1, header.Fill.Pattern)
		require.NotNil(t, header.Alignment)
		assert.Equal(t, "center", header.Alignment.Horizontal)
		assert.Equal(t, "center", header.Alignment.Vertical)

		last := styleOf(t, f, sheet, "S1")
		require.NotEmpty(t, last.Fill.Color)
	}

	body := styleOf(t, f, "All", "A2")
	require.NotNil(t, body.Alignment)
	assert.Equal(t, "center", body.Alignment.Horizontal)
	assert.Equal(t, "center", body.Alignment.Vertical)
	assert.Empty(t, body.Fill.Color)

	date := styleOf(t, f, "All", "J2")
	require.NotNil(t, date.CustomNumFmt)
	assert.Equal(t, DateNumFmt, *date.CustomNumFmt)
	require.NotNil(t, date.Alignment)
	assert.Equal(t, "center", date.Alignment.Horizontal)
}

func TestWriteColumnWidths(t *testing.T) {
	row := schemaRow(map[string]string{
		"Week ending date": "01/05/2024",
		"Contractor Name":  "Jane Doe",
		"Client Name":      "Very Long Client Name Ltd",
	}, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

	res, err := Write(reportTables([]models.Row{row}, nil, nil), nil)
	require.NoError(t, err)
	f := openResult(t, res)

	width := func(sheet, col string) float64 {
		w, err := f.GetColWidth(sheet, col)
		require.NoError(t, err)
		return w
	}

	// Contractor Name (K): 15-rune header beats 8-rune value
	assert.Equal(t, 17.0, width("All", "K"))
	// Client Name (E): value is longer than the header
	assert.Equal(t, float64(len("Very Long Client Name Ltd")+2), width("All", "E"))
	// Week ending date (J): header is longer than the display date
	assert.Equal(t, float64(len("Week ending date")+2), width("All", "J"))
	// Empty sheet falls back to header lengths
	assert.Equal(t, 17.0, width("Manpower", "K"))
	assert.Equal(t, float64(len("Brand")+2), width("Manpower", "A"))
}

func TestWriteMissingDateColumn(t *testing.T) {
	tables := []models.Table{
		{Name: "All", Columns: []string{"Brand", "Client Name"}, Rows: []models.Row{{Values: []string{"Experis", "Acme"}}}},
		{Name: "Experis", Columns: []string{"Brand", "Client Name"}},
		{Name: "Manpower", Columns: []string{"Brand", "Client Name"}},
	}

	res, err := Write(tables, nil)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 3)
	assert.Contains(t, res.Warnings[0], "Week ending date")
	assert.Contains(t, res.Warnings[0], `"All"`)

	f := openResult(t, res)
	body := styleOf(t, f, "All", "B2")
	require.NotNil(t, body.Alignment)
	assert.Equal(t, "center", body.Alignment.Horizontal)
	if body.CustomNumFmt != nil {
		assert.NotEqual(t, DateNumFmt, *body.CustomNumFmt)
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	row := schemaRow(map[string]string{
		"Brand":            "Manpower",
		"Week ending date": "07/04/2024",
	}, time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC))
	tables := reportTables([]models.Row{row}, nil, []models.Row{row})

	first, err := Write(tables, nil)
	require.NoError(t, err)
	second, err := Write(tables, nil)
	require.NoError(t, err)

	f1, f2 := openResult(t, first), openResult(t, second)
	for _, sheet := range f1.GetSheetList() {
		r1, err := f1.GetRows(sheet, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		r2, err := f2.GetRows(sheet, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, r1, r2, sheet)
	}
}

func TestWriteNoTables(t *testing.T) {
	_, err := Write(nil, nil)
	assert.Error(t, err)
}
