package wipreport

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/wipreport-go/pkg/wipreport/classify"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/models"
	"github.com/ukaji3/wipreport-go/pkg/wipreport/writer"
)

// ContentType is the MIME type of a generated report.
const ContentType = writer.ContentType

// fileNameLayout renders the generation time as YYYY-MM-DD HH-MM-SS.
const fileNameLayout = "2006-01-02 15-04-05"

// Report represents a generated Unbilled WIP workbook.
type Report struct {
	// ID identifies the report in logs.
	ID string
	// FileName is the suggested download name.
	FileName string
	// GeneratedAt is the local time the report was built.
	GeneratedAt time.Time
	// Content is the xlsx file.
	Content []byte
	// Views holds the tables written to the workbook.
	Views *models.Views
	// Counts holds All-view rows per brand.
	Counts classify.Counts
	// Warnings lists non-fatal formatting problems.
	Warnings []string
}

// Summary describes a report without its content.
type Summary struct {
	ID       string              `json:"id"`
	FileName string              `json:"file_name"`
	Rows     map[string]int      `json:"rows"`
	Brands   map[string]int      `json:"brands"`
	Skipped  []models.SkippedRow `json:"skipped,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
}

// FileName returns the report file name for generation time t.
func FileName(t time.Time) string {
	return "Unbilled WIP Report - " + t.Format(fileNameLayout) + ".xlsx"
}

// Summary returns the per-view row counts and skips of the report.
func (r *Report) Summary() Summary {
	s := Summary{
		ID:       r.ID,
		FileName: r.FileName,
		Rows: map[string]int{
			models.SheetAll:      len(r.Views.All.Rows),
			models.SheetExperis:  len(r.Views.Experis.Rows),
			models.SheetManpower: len(r.Views.Manpower.Rows),
		},
		Brands:   make(map[string]int, len(r.Counts)),
		Skipped:  r.Views.Skipped,
		Warnings: r.Warnings,
	}
	for brand, n := range r.Counts {
		s.Brands[brand.Label()] = n
	}
	return s
}

// Save writes the report into dir, creating dir if needed, and returns the
// written path. Failures are returned as *SaveError.
func (r *Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", NewSaveError(dir, r.FileName, err)
	}

	path := filepath.Join(dir, r.FileName)
	if err := os.WriteFile(path, r.Content, 0644); err != nil {
		return "", NewSaveError(dir, r.FileName, err)
	}
	return path, nil
}
