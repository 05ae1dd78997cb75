// Package metrics exports cache and search activity to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements types.Metrics and directory.SearchObserver on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	cacheEvents    *prometheus.CounterVec
	cacheFailures  *prometheus.CounterVec
	searchRequests *prometheus.CounterVec
	searchDuration prometheus.Histogram
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	cacheEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simplenav_cache_events_total",
		Help: "Cache lookups and removals by event",
	}, []string{"event"})

	cacheFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simplenav_cache_failures_total",
		Help: "Swallowed cache storage and serialization failures",
	}, []string{"op"})

	searchRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simplenav_search_requests_total",
		Help: "Directory searches by outcome",
	}, []string{"outcome"})

	searchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simplenav_search_duration_seconds",
		Help:    "Directory search latency",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})

	registry.MustRegister(cacheEvents, cacheFailures, searchRequests, searchDuration)

	return &Metrics{
		registry:       registry,
		cacheEvents:    cacheEvents,
		cacheFailures:  cacheFailures,
		searchRequests: searchRequests,
		searchDuration: searchDuration,
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) event(name string) {
	if m == nil {
		return
	}
	m.cacheEvents.WithLabelValues(name).Inc()
}

func (m *Metrics) Hit()      { m.event("hit") }
func (m *Metrics) Miss()     { m.event("miss") }
func (m *Metrics) Expire()   { m.event("expire") }
func (m *Metrics) Eviction() { m.event("evict") }

func (m *Metrics) Failure(op string) {
	if m == nil {
		return
	}
	m.cacheFailures.WithLabelValues(op).Inc()
}

func (m *Metrics) ObserveSearch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.searchRequests.WithLabelValues(outcome).Inc()
	m.searchDuration.Observe(elapsed.Seconds())
}

// CacheEvents returns the counter for event, for tests and diagnostics.
func (m *Metrics) CacheEvents(event string) prometheus.Counter {
	return m.cacheEvents.WithLabelValues(event)
}

// CacheFailures returns the counter for op.
func (m *Metrics) CacheFailures(op string) prometheus.Counter {
	return m.cacheFailures.WithLabelValues(op)
}

// SearchRequests returns the counter for outcome.
func (m *Metrics) SearchRequests(outcome string) prometheus.Counter {
	return m.searchRequests.WithLabelValues(outcome)
}
