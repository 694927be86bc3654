package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/healthdash/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.Use(RequestMetrics(metricsManager))
	r.HandleFunc("/api/oura", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.GaugeRequests))
		w.WriteHeader(http.StatusOK)
	}).Methods("GET").Name("oura")
	r.HandleFunc("/api/analyze", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}).Methods("POST")

	for _, req := range []*http.Request{
		httptest.NewRequest("GET", "/api/oura", nil),
		httptest.NewRequest("GET", "/api/oura", nil),
		httptest.NewRequest("POST", "/api/analyze", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("POST", "500")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))

	// named routes use their name, the rest their path template
	count, err := testutil.GatherAndCount(reg, "healthdash_test_server_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, testutil.CollectAndCount(metricsManager.HistogramRequestDuration))
}

func TestRequestMetrics_StatusDefaultsToOK(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	handler := RequestMetrics(metricsManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/no-route", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "200")))
}
