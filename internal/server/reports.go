package server

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ukaji3/wipreport-go/internal/metrics"
	"github.com/ukaji3/wipreport-go/pkg/wipreport"
	"go.uber.org/zap"
)

// Response headers set on a report download.
const (
	HeaderReportID      = "X-Report-ID"
	HeaderReportRows    = "X-Report-Rows"
	HeaderReportSkipped = "X-Report-Skipped"
	HeaderWarnings      = "X-Report-Warnings"
	HeaderSavedPath     = "X-Report-Saved-Path"
	HeaderSaveError     = "X-Report-Save-Error"
)

// uploadField is the multipart field carrying the timesheet workbook.
const uploadField = "file"

// ReportHandler handles report uploads.
type ReportHandler struct {
	opts      wipreport.Options
	saveDir   string
	maxUpload int64
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(opts wipreport.Options, saveDir string, maxUpload int64, m *metrics.Metrics, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		opts:      opts,
		saveDir:   saveDir,
		maxUpload: maxUpload,
		metrics:   m,
		logger:    logger.With(zap.String("handler", "reports")),
	}
}

// Create handles POST /api/reports. The workbook is returned as an
// attachment. With ?save=true it is also stored in the save directory; a
// failed save is reported in a header and does not fail the download.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	save := false
	if v := r.URL.Query().Get("save"); v != "" {
		var err error
		if save, err = strconv.ParseBool(v); err != nil {
			h.fail(w, r, NewAPIError(http.StatusBadRequest, CodeInvalidQuery, "save must be a boolean"))
			return
		}
	}

	report, ok := h.generate(w, r)
	if !ok {
		return
	}

	header := w.Header()
	header.Set(HeaderReportID, report.ID)
	header.Set(HeaderReportRows, strconv.Itoa(len(report.Views.All.Rows)))
	header.Set(HeaderReportSkipped, strconv.Itoa(len(report.Views.Skipped)))
	header.Set(HeaderWarnings, strconv.Itoa(len(report.Warnings)))

	if save {
		path, err := report.Save(h.saveDir)
		h.metrics.ObserveSave(err)
		if err != nil {
			h.logger.Warn("report save failed",
				zap.String("report_id", report.ID),
				zap.Error(err))
			header.Set(HeaderSaveError, err.Error())
		} else {
			h.logger.Info("report saved",
				zap.String("report_id", report.ID),
				zap.String("path", path))
			header.Set(HeaderSavedPath, path)
		}
	}

	header.Set("Content-Type", wipreport.ContentType)
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.FileName}))
	header.Set("Content-Length", strconv.Itoa(len(report.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.Content); err != nil {
		h.logger.Warn("failed to write report", zap.String("report_id", report.ID), zap.Error(err))
	}
}

// Summary handles POST /api/reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	report, ok := h.generate(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, report.Summary())
}

// generate runs the pipeline on the uploaded file. On failure the error
// response has been written and ok is false.
func (h *ReportHandler) generate(w http.ResponseWriter, r *http.Request) (report *wipreport.Report, ok bool) {
	if r.ContentLength > h.maxUpload {
		h.fail(w, r, uploadError(&http.MaxBytesError{Limit: h.maxUpload}))
		return nil, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, _, err := r.FormFile(uploadField)
	if err != nil {
		h.fail(w, r, uploadError(err))
		return nil, false
	}
	defer file.Close()
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	opts := h.opts
	opts.Logger = h.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))

	report, err = wipreport.Generate(file, opts)
	h.metrics.ObserveReport(report, err)
	if err != nil {
		apiErr := generateError(err)
		if apiErr.StatusCode >= http.StatusInternalServerError {
			h.logger.Error("report generation failed", zap.Error(err))
		}
		h.fail(w, r, apiErr)
		return nil, false
	}
	return report, true
}

func (h *ReportHandler) fail(w http.ResponseWriter, r *http.Request, apiErr *APIError) {
	if err := render.Render(w, r, apiErr); err != nil {
		h.logger.Error("failed to render error", zap.Error(err))
	}
}
