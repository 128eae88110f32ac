package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStorage(t *testing.T) {
	before := testutil.ToFloat64(storageOperationsTotal.WithLabelValues("move", "error"))

	ObserveStorage("move", time.Now(), errors.New("denied"))
	ObserveStorage("move", time.Now(), nil)

	assert.InDelta(t, before+1, testutil.ToFloat64(storageOperationsTotal.WithLabelValues("move", "error")), 0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(storageOperationsTotal.WithLabelValues("move", "success")), 1.0)
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveRequest(http.MethodGet, "/admin/media", http.StatusOK)
	BucketSkipped()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "hotelmedia_http_requests_total")
	assert.Contains(t, string(body), "hotelmedia_media_skipped_buckets_total")
}
