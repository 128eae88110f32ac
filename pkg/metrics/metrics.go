// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotelmedia"

var (
	// storageOperationsTotal counts calls into the object store by operation and outcome.
	storageOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_operations_total",
			Help:      "Total number of object storage operations",
		},
		[]string{"operation", "status"}, // status: success, error
	)

	storageOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_operation_duration_seconds",
			Help:      "Duration of object storage operations in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "code"},
	)

	skippedBucketsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_skipped_buckets_total",
			Help:      "Buckets skipped during media aggregation because listing failed",
		},
	)

	registry = prometheus.NewRegistry()
)

func init() {
	registry.MustRegister(
		storageOperationsTotal,
		storageOperationDuration,
		httpRequestsTotal,
		skippedBucketsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveStorage records one storage call that started at start.
func ObserveStorage(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	storageOperationsTotal.WithLabelValues(operation, status).Inc()
	storageOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func ObserveRequest(method, route string, code int) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

func BucketSkipped() {
	skippedBucketsTotal.Inc()
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
