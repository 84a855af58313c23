package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registry *prometheus.Registry

	// Weather lookups, one per CLI invocation.
	WeatherQueriesTotal prometheus.Counter

	// wttr.in calls by status label (success, client_error, server_error, rate_limited, error).
	WeatherAPICallsTotal *prometheus.CounterVec

	// wttr.in latency. Watch for: p95 near the configured timeout.
	WeatherAPIDuration *prometheus.HistogramVec

	// Cache lookups by result: hit, miss, stale, bypass.
	CacheLookupsTotal *prometheus.CounterVec

	// Cache filesystem failures by operation: read, write.
	CacheErrorsTotal *prometheus.CounterVec

	// Failed lookups by pipeline stage and category.
	PipelineErrorsTotal *prometheus.CounterVec

	// Unix time of the last lookup that produced a record.
	LastSuccessTimestamp prometheus.Gauge
)

func init() {
	registry = prometheus.NewRegistry()

	WeatherQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wttrQueriesTotal",
			Help: "Total number of weather lookups",
		},
	)
	WeatherAPICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wttrApiCallsTotal",
			Help: "Total number of wttr.in API calls",
		},
		[]string{"status"},
	)
	WeatherAPIDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wttrApiDurationSeconds",
			Help:    "wttr.in API latency in seconds (per request)",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)
	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wttrCacheLookupsTotal",
			Help: "Cache lookups by result (hit, miss, stale, bypass)",
		},
		[]string{"result"},
	)
	CacheErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wttrCacheErrorsTotal",
			Help: "Cache file errors by operation",
		},
		[]string{"op"},
	)
	PipelineErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wttrPipelineErrorsTotal",
			Help: "Failed lookups by stage (fetch, extract, parse, cache) and category",
		},
		[]string{"stage", "category"},
	)
	LastSuccessTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wttrLastSuccessTimestampSeconds",
			Help: "Unix time of the last successful lookup",
		},
	)

	registry.MustRegister(
		WeatherQueriesTotal,
		WeatherAPICallsTotal, WeatherAPIDuration,
		CacheLookupsTotal, CacheErrorsTotal,
		PipelineErrorsTotal,
		LastSuccessTimestamp,
	)
}

// Gatherer exposes the private registry.
func Gatherer() prometheus.Gatherer {
	return registry
}

// WriteTextfile writes all metrics in the text exposition format for the
// node_exporter textfile collector. The file is replaced atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, registry)
}
