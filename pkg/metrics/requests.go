package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics records outbound backend calls by method and outcome class.
type RequestMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// NewRequestMetrics registers the request metrics on the provided registerer.
// A nil registerer yields a recorder that drops every observation.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	if reg == nil {
		return &RequestMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sellerdash",
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sellerdash",
		Name:      "backend_requests_total",
		Help:      "Backend API calls partitioned by outcome class.",
	}, []string{"method", "outcome"})
	reg.MustRegister(duration, outcomes)
	return &RequestMetrics{
		duration: duration,
		outcomes: outcomes,
	}
}

// Observe records one finished call.
func (m *RequestMetrics) Observe(method, outcome string, elapsed time.Duration) {
	if m == nil || m.duration == nil || m.outcomes == nil {
		return
	}
	method = normalizeMethod(method)
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	m.outcomes.WithLabelValues(method, normalizeLabel(outcome)).Inc()
}

// IncOutcome counts a call that never reached the network, such as a local
// validation rejection.
func (m *RequestMetrics) IncOutcome(method, outcome string) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.WithLabelValues(normalizeMethod(method), normalizeLabel(outcome)).Inc()
}

func normalizeMethod(method string) string {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		return http.MethodGet
	}
	return method
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
