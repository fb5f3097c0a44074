// Package metrics holds the Prometheus collectors of the application.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// Metrics provides observability for numerology calculations and the HTTP API.
type Metrics struct {
	// Calculations by operation and outcome
	Calculations *prometheus.CounterVec

	// Calculation latency by operation
	CalculationLatency *prometheus.HistogramVec

	// HTTP requests by method, route pattern and status code
	HTTPRequests *prometheus.CounterVec

	// HTTP latency by method and route pattern
	HTTPLatency *prometheus.HistogramVec
}

// New creates a new Metrics instance with every collector registered on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "numera_calculations_total",
			Help: "Total numerology calculations by operation and outcome",
		}, []string{"operation", "outcome"}), // outcome: "success", "invalid_input", "error"

		CalculationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "numera_calculation_duration_seconds",
			Help:    "Duration of numerology calculations by operation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "numera_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "numera_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveCalculation records one calculation with its outcome and duration.
func (m *Metrics) ObserveCalculation(operation, outcome string, d time.Duration) {
	if m != nil {
		m.Calculations.WithLabelValues(operation, outcome).Inc()
		m.CalculationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
		m.HTTPLatency.WithLabelValues(method, route).Observe(d.Seconds())
	}
}
