package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	SearchesTotal    *prometheus.CounterVec
	SearchDuration   prometheus.Histogram
	UpstreamTotal    *prometheus.CounterVec
	UpstreamDuration prometheus.Histogram
	PagesTotal       *prometheus.CounterVec
}

// New registers and returns the service metrics. Call once per process;
// promauto panics on duplicate registration.
func New() *Metrics {
	return &Metrics{
		SearchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "course_api_searches_total",
				Help: "Total number of search submissions processed",
			},
			[]string{"surface", "status"},
		),
		SearchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "course_api_search_duration_seconds",
				Help:    "End-to-end search handling duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
		),
		UpstreamTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "course_api_upstream_requests_total",
				Help: "Total number of requests to the recommend backend",
			},
			[]string{"status"},
		),
		UpstreamDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "course_api_upstream_request_duration_seconds",
				Help:    "Recommend backend request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
		),
		PagesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "course_api_pages_total",
				Help: "Total number of search page renders",
			},
			[]string{"state"},
		),
	}
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordSearch records one search submission and its outcome.
func (m *Metrics) RecordSearch(surface, status string, duration time.Duration) {
	m.SearchesTotal.WithLabelValues(surface, status).Inc()
	m.SearchDuration.Observe(duration.Seconds())
}

// RecordUpstream records one request to the recommend backend.
func (m *Metrics) RecordUpstream(status string, duration time.Duration) {
	m.UpstreamTotal.WithLabelValues(status).Inc()
	m.UpstreamDuration.Observe(duration.Seconds())
}

// RecordPage records one rendered search page by view state.
func (m *Metrics) RecordPage(state string) {
	m.PagesTotal.WithLabelValues(state).Inc()
}
