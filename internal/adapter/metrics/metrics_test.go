package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

func TestImportMetrics_RecordImport(t *testing.T) {
	m := NewImportMetrics(prometheus.NewRegistry())

	m.RecordImport(domain.ImportSourceText, domain.ColumnModeFuzzy,
		domain.ImportStats{Rows: 5, Accepted: 3, SkippedHeader: 1, SkippedInvalid: 1}, true)
	m.RecordImport(domain.ImportSourceText, domain.ColumnModeFuzzy,
		domain.ImportStats{Rows: 2, SkippedInvalid: 2}, false)
	m.RecordImport(domain.ImportSourceWorkbook, domain.ColumnModeFixed,
		domain.ImportStats{Rows: 1, Accepted: 1}, true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues("TEXT", "fuzzy", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues("TEXT", "fuzzy", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues("WORKBOOK", "fixed", "true")))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues("TEXT", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues("TEXT", "skipped_header")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues("TEXT", "skipped_invalid")))

	assert.Equal(t, 2, testutil.CollectAndCount(m.TradesPerImport))
}

func TestImportMetrics_Handler(t *testing.T) {
	m := NewImportMetrics(nil)
	m.RecordImport(domain.ImportSourceText, domain.ColumnModeFuzzy, domain.ImportStats{Accepted: 2}, true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shifttrade_imports_total{mode="fuzzy",source="TEXT",success="true"} 1`)
	assert.Contains(t, rec.Body.String(), "shifttrade_trades_per_import_bucket")
}
