package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce            sync.Once
	httpRequestsTotal       *prometheus.CounterVec
	httpLatencySeconds      *prometheus.HistogramVec
	referenceChecksTotal    *prometheus.CounterVec
	referenceLatencySeconds *prometheus.HistogramVec
	orphanedReferencesTotal *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors shared by the services.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		referenceChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reference_checks_total",
			Help: "Existence checks performed before writes, by entity, locality and outcome.",
		}, []string{"entity", "locality", "outcome"})

		referenceLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reference_check_latency_seconds",
			Help:    "Latency distribution for existence checks.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 3.0},
		}, []string{"entity", "locality"})

		orphanedReferencesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orphaned_references_total",
			Help: "Rows left pointing at a row deleted by its owning service.",
		}, []string{"entity", "referenced"})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, referenceChecksTotal, referenceLatencySeconds, orphanedReferencesTotal)
	})
}

// HTTPRequests exposes the request counter.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the request latency histogram.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// ReferenceChecks exposes the existence check counter.
func ReferenceChecks() *prometheus.CounterVec {
	RegisterMetrics()
	return referenceChecksTotal
}

// ObserveReferenceCheck records one existence check.
func ObserveReferenceCheck(entity, locality, outcome string, duration time.Duration) {
	RegisterMetrics()
	referenceChecksTotal.WithLabelValues(entity, locality, outcome).Inc()
	referenceLatencySeconds.WithLabelValues(entity, locality).Observe(duration.Seconds())
}

// OrphanedReferences exposes the orphan counter.
func OrphanedReferences() *prometheus.CounterVec {
	RegisterMetrics()
	return orphanedReferencesTotal
}
