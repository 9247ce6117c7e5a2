package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the dashboard service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	QueryErrorsTotal    *prometheus.CounterVec
	CacheHits           prometheus.Counter
	CacheMisses         prometheus.Counter
}

// New initializes and registers the Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "invoicing",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "invoicing",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		QueryErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "invoicing",
			Subsystem: "store",
			Name:      "query_errors_total",
			Help:      "Total number of failed store operations by operation name.",
		}, []string{"op"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "invoicing",
			Subsystem: "cache",
			Name:      "dashboard_hits_total",
			Help:      "Total number of dashboard cache hits.",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "invoicing",
			Subsystem: "cache",
			Name:      "dashboard_misses_total",
			Help:      "Total number of dashboard cache misses.",
		}),
	}
}
