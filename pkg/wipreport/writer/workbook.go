// Package writer renders report tables into a formatted xlsx workbook.
package writer

import (
	"errors"
	"fmt"

	"github.com/ukaji3/wipreport-go/pkg/wipreport/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ContentType is the MIME type of the rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Result holds a rendered workbook.
type Result struct {
	// Content is the xlsx file.
	Content []byte
	// Warnings lists non-fatal formatting problems.
	Warnings []string
}

// Formatter writes tables into one workbook, one sheet per table.
type Formatter struct {
	wb       *excelize.File
	styles   styleSet
	logger   *zap.Logger
	warnings []string
}

// Write renders tables, in order, into a new workbook held in memory.
func Write(tables []models.Table, logger *zap.Logger) (*Result, error) {
	if len(tables) == 0 {
		return nil, errors.New("no tables to write")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	wb := excelize.NewFile()
	defer wb.Close()

	styles, err := newStyleSet(wb)
	if err != nil {
		return nil, fmt.Errorf("failed to register styles: %w", err)
	}

	fm := &Formatter{
		wb:     wb,
		styles: styles,
		logger: logger.With(zap.String("component", "writer")),
	}

	for i := range tables {
		t := &tables[i]
		if i == 0 {
			err = wb.SetSheetName(wb.GetSheetName(0), t.Name)
		} else {
			_, err = wb.NewSheet(t.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", t.Name, err)
		}
		if err := fm.writeSheet(t); err != nil {
			return nil, fmt.Errorf("failed to write sheet %q: %w", t.Name, err)
		}
	}
	wb.SetActiveSheet(0)

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return &Result{
		Content:  buf.Bytes(),
		Warnings: fm.warnings,
	}, nil
}

func (fm *Formatter) writeSheet(t *models.Table) error {
	sheet := t.Name
	ncols := len(t.Columns)
	if ncols == 0 {
		return nil
	}

	dateCol, hasDate := t.ColumnIndex()[models.ColumnWeekEnding]
	if !hasDate {
		msg := fmt.Sprintf("%q column not found in sheet %q", models.ColumnWeekEnding, sheet)
		fm.logger.Warn("date format not applied", zap.String("sheet", sheet))
		fm.warnings = append(fm.warnings, msg)
	}

	header := make([]interface{}, ncols)
	for c, name := range t.Columns {
		header[c] = name
	}
	if err := fm.wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		values := make([]interface{}, ncols)
		for c := range values {
			values[c], _ = cellValue(row, c, hasDate && c == dateCol)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := fm.wb.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(ncols)
	if err != nil {
		return err
	}
	if err := fm.wb.SetCellStyle(sheet, "A1", lastCol+"1", fm.styles.header); err != nil {
		return err
	}

	if n := len(t.Rows); n > 0 {
		bottomRight := fmt.Sprintf("%s%d", lastCol, n+1)
		if err := fm.wb.SetCellStyle(sheet, "A2", bottomRight, fm.styles.body); err != nil {
			return err
		}
	}

	if hasDate {
		for r, row := range t.Rows {
			if row.Value(dateCol) == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(dateCol+1, r+2)
			if err != nil {
				return err
			}
			if err := fm.wb.SetCellStyle(sheet, cell, cell, fm.styles.date); err != nil {
				return err
			}
		}
	}

	for c, width := range ColumnWidths(t) {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := fm.wb.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	fm.logger.Debug("sheet written",
		zap.String("sheet", sheet),
		zap.Int("rows", len(t.Rows)),
		zap.Bool("date_format", hasDate))

	return nil
}
