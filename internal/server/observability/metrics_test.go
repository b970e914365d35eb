package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordDecision(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordDecision("allow", "public")
	m.RecordDecision("deny", "expired")
	m.RecordDecision("deny", "expired")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.authDecisions.WithLabelValues("allow", "public")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.authDecisions.WithLabelValues("deny", "expired")))
}

func TestMetrics_RecordLogin(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordLogin("success")
	m.RecordLogin("invalid_credentials")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("invalid_credentials")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.RecordLogin("success")
	m.ObserveRequest("/graphql", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `slugmart_logins_total{outcome="success"} 1`), body)
	assert.Contains(t, body, "slugmart_http_request_duration_seconds_bucket")
}

func TestNewMetrics_TwoRegistriesDoNotConflict(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}
