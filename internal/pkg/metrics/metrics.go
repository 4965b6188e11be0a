package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ImportsCreated  prometheus.Counter
	CitizenPatches  prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "census_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "census_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ImportsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "census_imports_created_total",
			Help: "Total number of imports successfully created",
		}),
		CitizenPatches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "census_citizen_patches_total",
			Help: "Total number of citizen patches successfully committed",
		}),
	}
}

// IncrementImportsCreated increments the imports created counter by 1
func (m *Metrics) IncrementImportsCreated() {
	m.ImportsCreated.Inc()
}

// IncrementCitizenPatches increments the committed patches counter by 1
func (m *Metrics) IncrementCitizenPatches() {
	m.CitizenPatches.Inc()
}
