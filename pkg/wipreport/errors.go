package wipreport

import (
	"errors"
	"fmt"

	"github.com/ukaji3/wipreport-go/pkg/wipreport/parser"
)

// ErrUnreadableFile indicates the input is not a readable xlsx workbook.
var ErrUnreadableFile = errors.New("could not read file")

// ErrNoWorksheet indicates the workbook contains no worksheet.
var ErrNoWorksheet = parser.ErrNoWorksheet

// ErrNoHeader indicates the first worksheet has no header row.
var ErrNoHeader = parser.ErrNoHeader

// SaveError represents a failure to store a generated report on disk.
// The report itself remains usable.
type SaveError struct {
	Dir      string
	FileName string
	Err      error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %q to %q: %v", e.FileName, e.Dir, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// NewSaveError creates a new SaveError.
func NewSaveError(dir, fileName string, err error) *SaveError {
	return &SaveError{
		Dir:      dir,
		FileName: fileName,
		Err:      err,
	}
}
