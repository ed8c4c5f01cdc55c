package classify

import (
	"slices"
	"strings"
	"time"

	"github.com/ukaji3/wipreport-go/pkg/wipreport/models"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/parser"
	"go.uber.org/zap"
)

// Counts holds per-brand row totals of the All view.
type Counts map[Brand]int

// classified is a record that survived date validation.
type classified struct {
	record     models.Record
	brand      Brand
	weekEnding time.Time
	sourceRow  int
}

// Normalize completes the schema of raw, derives brands, drops rows with an
// unparseable week ending date, sorts the remainder and partitions it into
// the All, Experis and Manpower views. raw records are modified in place.
func Normalize(raw *models.RawTable, logger *zap.Logger) (*models.Views, Counts) {
	if logger == nil {
		logger = zap.NewNop()
	}
	columns := models.Schema()

	// Backfill schema columns absent from the upload
	var missing []string
	for _, c := range columns {
		if !raw.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		logger.Debug("backfilling missing columns", zap.Strings("columns", missing))
	}

	views := &models.Views{
		All:      models.Table{Name: models.SheetAll, Columns: columns},
		Experis:  models.Table{Name: models.SheetExperis, Columns: columns},
		Manpower: models.Table{Name: models.SheetManpower, Columns: columns},
	}

	rows := make([]classified, 0, len(raw.Records))
	for i, rec := range raw.Records {
		for _, c := range missing {
			rec[c] = models.Cell{}
		}

		brand := BrandFor(rec[models.ColumnInvoiceGroup].Value)
		rec[models.ColumnBrand] = models.Cell{Value: string(brand)}

		sourceRow := i + 2
		if i < len(raw.RowNumbers) {
			sourceRow = raw.RowNumbers[i]
		}

		rawDate := rec[models.ColumnWeekEnding].Value
		weekEnding, ok := parser.ParseDate(rawDate, raw.Date1904)
		if !ok {
			logger.Warn("skipping row with invalid week ending date",
				zap.Int("row", sourceRow),
				zap.String("value", rawDate))
			views.Skipped = append(views.Skipped, models.SkippedRow{
				Row:   sourceRow,
				Value: rawDate,
			})
			continue
		}

		rows = append(rows, classified{
			record:     rec,
			brand:      brand,
			weekEnding: weekEnding,
			sourceRow:  sourceRow,
		})
	}

	slices.SortStableFunc(rows, compareRows)

	counts := make(Counts)
	for _, r := range rows {
		r.record[models.ColumnWeekEnding] = models.Cell{Value: parser.FormatDate(r.weekEnding)}
		row := project(r, columns)
		counts[r.brand]++

		views.All.Rows = append(views.All.Rows, row)
		switch {
		case r.brand == BrandExperis:
			views.Experis.Rows = append(views.Experis.Rows, row)
		case r.brand.IsManpower():
			views.Manpower.Rows = append(views.Manpower.Rows, row)
		}
	}

	logger.Info("records classified",
		zap.Int("input_rows", len(raw.Records)),
		zap.Int("all", len(views.All.Rows)),
		zap.Int("experis", len(views.Experis.Rows)),
		zap.Int("manpower", len(views.Manpower.Rows)),
		zap.Int("unclassified", counts[BrandUnclassified]),
		zap.Int("skipped", len(views.Skipped)))

	return views, counts
}

// compareRows orders by client, then contractor, then week ending date.
func compareRows(a, b classified) int {
	if c := strings.Compare(a.record[models.ColumnClientName].Value, b.record[models.ColumnClientName].Value); c != 0 {
		return c
	}
	if c := strings.Compare(a.record[models.ColumnContractorName].Value, b.record[models.ColumnContractorName].Value); c != 0 {
		return c
	}
	return a.weekEnding.Compare(b.weekEnding)
}

// project selects the output columns of r in order, dropping extras.
func project(r classified, columns []string) models.Row {
	values := make([]string, len(columns))
	kinds := make([]models.CellKind, len(columns))
	for i, c := range columns {
		values[i] = r.record[c].Value
		kinds[i] = r.record[c].Kind
	}
	return models.Row{
		Values:     values,
		Kinds:      kinds,
		WeekEnding: r.weekEnding,
		SourceRow:  r.sourceRow,
	}
}
