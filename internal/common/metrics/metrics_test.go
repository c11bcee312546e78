package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()

	r.RecordDraw("redeemed")
	r.RecordDraw("redeemed")
	r.RecordDraw("exhausted")
	r.RecordPlay()
	r.RecordReset()
	r.RecordStoreError("save_catalog")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.draws.WithLabelValues("redeemed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.draws.WithLabelValues("exhausted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.plays))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.resets))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.storeErrors.WithLabelValues("save_catalog")))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.RecordDraw("redeemed")
		r.RecordPlay()
		r.RecordReset()
		r.RecordStoreError("load")
		r.RecordHTTPRequest(http.MethodGet, "/", 200, time.Millisecond)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.RecordHTTPRequest(http.MethodGet, "/api/v1/offers/draw", 200, 5*time.Millisecond)
	r.RecordHTTPRequest(http.MethodGet, "", 404, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `scratchcard_http_requests_total{method="GET",route="/api/v1/offers/draw",status="200"} 1`)
	assert.Contains(t, string(body), `route="unmatched"`)
}
