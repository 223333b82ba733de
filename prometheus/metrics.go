package prometheus

import (
	"time"

	"sheetsync-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Sync metrics
	SyncRequestsCounter prometheus.CounterVec
	SyncRowsWritten     prometheus.CounterVec

	// Authentication metrics
	AuthFailuresCounter prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Sync request metrics, labelled by sheet type and outcome
	SyncRequestsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_sync_requests_total",
			Help: "Total number of sheet sync requests",
		},
		[]string{"sheet", "outcome"},
	)

	// Rows written per sheet type
	SyncRowsWritten = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_sync_rows_written_total",
			Help: "Total number of rows written by sheet syncs",
		},
		[]string{"sheet"},
	)

	// Authentication metrics
	AuthFailuresCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_failures_total",
			Help: "Total number of rejected sync keys",
		},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordSyncRequest increments the counter for sync requests
func RecordSyncRequest(sheet, outcome string) {
	SyncRequestsCounter.WithLabelValues(sheet, outcome).Inc()
}

// RecordSyncRows adds to the rows-written counter for a sheet type
func RecordSyncRows(sheet string, rows int) {
	SyncRowsWritten.WithLabelValues(sheet).Add(float64(rows))
}
