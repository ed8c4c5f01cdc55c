package wipreport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/classify"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/parser"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/writer"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Generate reads an uploaded timesheet workbook from r and builds the report.
// Only unreadable input fails; bad rows are skipped and formatting problems
// are returned as warnings.
func Generate(r io.Reader, opts Options) (*Report, error) {
	id := uuid.NewString()
	logger := opts.logger().With(zap.String("report_id", id))

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		logger.Warn("input is not a readable workbook", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	raw, err := parser.ReadTable(f)
	if err != nil {
		if errors.Is(err, parser.ErrNoWorksheet) || errors.Is(err, parser.ErrNoHeader) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	logger.Info("input read",
		zap.String("sheet", raw.SheetName),
		zap.Int("rows", len(raw.Records)),
		zap.Int("columns", len(raw.Columns)))

	views, counts := classify.Normalize(raw, logger.With(zap.String("component", "classify")))

	out, err := writer.Write(views.Tables(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}
	for _, w := range out.Warnings {
		logger.Warn("formatting warning", zap.String("warning", w))
	}

	generatedAt := opts.now()
	report := &Report{
		ID:          id,
		FileName:    FileName(generatedAt),
		GeneratedAt: generatedAt,
		Content:     out.Content,
		Views:       views,
		Counts:      counts,
		Warnings:    out.Warnings,
	}

	logger.Info("report generated",
		zap.String("file_name", report.FileName),
		zap.Int("bytes", len(report.Content)))

	return report, nil
}

// GenerateFile builds the report from the workbook at path.
func GenerateFile(path string, opts Options) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Generate(f, opts)
}
