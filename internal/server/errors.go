package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/ukaji3/wipreport-go/pkg/wipreport"
)

// Error codes returned in APIError.ErrorCode.
const (
	CodeMissingFile    = "missing_file"
	CodeInvalidUpload  = "invalid_upload"
	CodeUploadTooLarge = "upload_too_large"
	CodeInvalidQuery   = "invalid_query"
	CodeUnreadableFile = "unreadable_file"
	CodeNoWorksheet    = "no_worksheet"
	CodeNoHeader       = "no_header"
	CodeInternal       = "internal_error"
)

// APIError is the JSON body of every failed API request.
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Render implements render.Renderer.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// NewAPIError creates an APIError.
func NewAPIError(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// uploadError maps a multipart read failure to an APIError.
func uploadError(err error) *APIError {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return NewAPIError(http.StatusRequestEntityTooLarge, CodeUploadTooLarge, "upload exceeds the size limit")
	case errors.Is(err, http.ErrMissingFile):
		return NewAPIError(http.StatusBadRequest, CodeMissingFile, `multipart field "file" is required`)
	default:
		e := NewAPIError(http.StatusBadRequest, CodeInvalidUpload, "request is not a valid multipart upload")
		e.Details = err.Error()
		return e
	}
}

// generateError maps a wipreport.Generate failure to an APIError.
func generateError(err error) *APIError {
	switch {
	case errors.Is(err, wipreport.ErrNoWorksheet):
		return NewAPIError(http.StatusBadRequest, CodeNoWorksheet, "workbook has no worksheet")
	case errors.Is(err, wipreport.ErrNoHeader):
		return NewAPIError(http.StatusBadRequest, CodeNoHeader, "worksheet has no header row")
	case errors.Is(err, wipreport.ErrUnreadableFile):
		return NewAPIError(http.StatusBadRequest, CodeUnreadableFile, "could not read file")
	default:
		return NewAPIError(http.StatusInternalServerError, CodeInternal, "failed to generate report")
	}
}
