package observer

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/reusedev/draw-edit/internal/consts"
	"github.com/stretchr/testify/require"
)

func TestMetricsEditOutcome(t *testing.T) {
	m := NewMetrics()
	m.Update(EventEditOutcome, consts.OutcomeSuccess)
	m.Update(EventEditOutcome, consts.OutcomeSuccess)
	m.Update(EventEditOutcome, consts.OutcomeEmpty)
	m.Update(EventEditOutcome, "not an outcome")
	m.Update("unknown", consts.OutcomeFailed)

	require.Equal(t, 2.0, testutil.ToFloat64(m.editOutcomes.WithLabelValues("success")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.editOutcomes.WithLabelValues("empty")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.editOutcomes.WithLabelValues("failed")))
}

func TestMetricsHTTPRequest(t *testing.T) {
	m := NewMetrics()
	m.Update(EventHTTPRequest, HTTPRequest{Method: "POST", Route: "/api/edit-image", Status: 400, Duration: 5 * time.Millisecond})
	require.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("POST", "/api/edit-image", "400")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "draw_edit_http_requests_total")
	require.Contains(t, string(body), "go_goroutines")
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		Nop().Update(EventEditOutcome, consts.OutcomeSuccess)
	})
}
