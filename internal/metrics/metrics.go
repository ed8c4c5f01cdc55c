// Package metrics exposes Prometheus counters for report generation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ukaji3/wipreport-go/pkg/wipreport"
)

const namespace = "wipreport"

// Status label values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Metrics holds the report counters and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	ReportsGenerated *prometheus.CounterVec
	RowsClassified   *prometheus.CounterVec
	RowsSkipped      prometheus.Counter
	ReportSaves      *prometheus.CounterVec
}

// New creates the counters on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Reports generated, by outcome.",
		}, []string{"status"}),
		RowsClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_classified_total",
			Help:      "Rows written to the All sheet, by brand.",
		}, []string{"brand"}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "Rows dropped for an invalid week ending date.",
		}),
		ReportSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_saves_total",
			Help:      "Explicit report saves, by outcome.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(m.ReportsGenerated, m.RowsClassified, m.RowsSkipped, m.ReportSaves)
	return m
}

// ObserveReport records a generation attempt. r is nil when err is set.
func (m *Metrics) ObserveReport(r *wipreport.Report, err error) {
	if err != nil || r == nil {
		m.ReportsGenerated.WithLabelValues(StatusFailed).Inc()
		return
	}
	m.ReportsGenerated.WithLabelValues(StatusOK).Inc()
	for brand, n := range r.Counts {
		m.RowsClassified.WithLabelValues(brand.Label()).Add(float64(n))
	}
	m.RowsSkipped.Add(float64(len(r.Views.Skipped)))
}

// ObserveSave records an explicit save attempt.
func (m *Metrics) ObserveSave(err error) {
	if err != nil {
		m.ReportSaves.WithLabelValues(StatusFailed).Inc()
		return
	}
	m.ReportSaves.WithLabelValues(StatusOK).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
