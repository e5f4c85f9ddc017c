package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the ingestion service

var (
	// API Call metrics
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nflgoat_api_calls_total",
			Help: "Total number of BallDontLie API calls",
		},
		[]string{"endpoint", "status"},
	)

	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nflgoat_api_call_duration_seconds",
			Help:    "Duration of API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Database metrics
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nflgoat_db_connections_active",
			Help: "Number of active database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nflgoat_db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nflgoat_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nflgoat_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// Dataset metrics
	RowsUpserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nflgoat_rows_upserted_total",
			Help: "Total number of rows written per dataset",
		},
		[]string{"dataset"},
	)

	RowsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nflgoat_rows_rejected_total",
			Help: "Total number of rows dropped by validation per dataset",
		},
		[]string{"dataset"},
	)

	DatasetDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nflgoat_dataset_duration_seconds",
			Help:    "Duration of one dataset sync in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"dataset"},
	)

	DatasetRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nflgoat_dataset_runs_total",
			Help: "Total number of dataset syncs",
		},
		[]string{"dataset", "status"},
	)

	// Sync metrics
	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nflgoat_sync_duration_seconds",
			Help:    "Duration of full sync runs in seconds",
			Buckets: []float64{10, 30, 60, 300, 600, 1800, 3600},
		},
		[]string{"type"},
	)

	LastSuccessfulSync = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nflgoat_last_successful_sync_timestamp",
			Help: "Timestamp of last successful sync run",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nflgoat_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// RecordAPICall records an API call metric
func RecordAPICall(endpoint, status string, duration float64) {
	APICallsTotal.WithLabelValues(endpoint, status).Inc()
	APICallDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordDataset records the outcome of one dataset sync
func RecordDataset(dataset, status string, upserted, rejected int, duration float64) {
	DatasetRunsTotal.WithLabelValues(dataset, status).Inc()
	RowsUpserted.WithLabelValues(dataset).Add(float64(upserted))
	RowsRejected.WithLabelValues(dataset).Add(float64(rejected))
	DatasetDuration.WithLabelValues(dataset).Observe(duration)
}

// RecordSync records a full sync run
func RecordSync(syncType, status string, duration float64) {
	SyncDuration.WithLabelValues(syncType).Observe(duration)

	if status == "success" {
		LastSuccessfulSync.SetToCurrentTime()
	}
}

// RecordCacheHit records a cache hit
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// UpdateDBConnectionStats updates database connection pool statistics
func UpdateDBConnectionStats(active, idle int32) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
