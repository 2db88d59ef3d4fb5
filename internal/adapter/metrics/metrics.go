package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// ImportMetrics implements domain.ImportRecorder with Prometheus collectors
type ImportMetrics struct {
	gatherer prometheus.Gatherer

	ImportsTotal    *prometheus.CounterVec
	RowsTotal       *prometheus.CounterVec
	TradesPerImport *prometheus.HistogramVec
}

// NewImportMetrics registers the import collectors on reg.
// A nil reg uses a fresh registry.
func NewImportMetrics(reg *prometheus.Registry) *ImportMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &ImportMetrics{
		gatherer: reg,

		ImportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shifttrade_imports_total",
				Help: "Import batches processed, by source, column mode and outcome",
			},
			[]string{"source", "mode", "success"},
		),

		RowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shifttrade_import_rows_total",
				Help: "Data rows seen by the trade builder, by outcome",
			},
			[]string{"source", "outcome"},
		),

		TradesPerImport: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shifttrade_trades_per_import",
				Help:    "Accepted trades per successful import",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"source"},
		),
	}
}

// RecordImport records one finished batch
func (m *ImportMetrics) RecordImport(source domain.ImportSource, mode domain.ColumnMode, stats domain.ImportStats, success bool) {
	src := string(source)

	m.ImportsTotal.WithLabelValues(src, string(mode), strconv.FormatBool(success)).Inc()
	m.RowsTotal.WithLabelValues(src, "accepted").Add(float64(stats.Accepted))
	m.RowsTotal.WithLabelValues(src, "skipped_header").Add(float64(stats.SkippedHeader))
	m.RowsTotal.WithLabelValues(src, "skipped_invalid").Add(float64(stats.SkippedInvalid))

	if success {
		m.TradesPerImport.WithLabelValues(src).Observe(float64(stats.Accepted))
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *ImportMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
