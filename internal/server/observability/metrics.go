// Package observability holds the server's Prometheus metrics.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements auth.DecisionRecorder and services.LoginRecorder.
type Metrics struct {
	authDecisions   *prometheus.CounterVec
	logins          *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	gatherer        prometheus.Gatherer
}

// NewMetrics registers the slugmart collectors with reg. Pass a fresh
// prometheus.NewRegistry() in tests.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		authDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "slugmart_auth_decisions_total",
			Help: "Auth gate decisions by outcome and reason",
		}, []string{"decision", "reason"}),
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "slugmart_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "slugmart_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "code"}),
		gatherer: reg,
	}
}

func (m *Metrics) RecordDecision(decision, reason string) {
	m.authDecisions.WithLabelValues(decision, reason).Inc()
}

func (m *Metrics) RecordLogin(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequest(route string, code int, d time.Duration) {
	m.requestDuration.WithLabelValues(route, strconv.Itoa(code)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
