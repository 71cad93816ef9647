package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStatusRecorder(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := NewStatusRecorder(rr)
	rec.WriteHeader(http.StatusTeapot)
	if _, err := rec.Write([]byte("short and stout")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rec.Status() != http.StatusTeapot {
		t.Fatalf("unexpected status %d", rec.Status())
	}
	if rec.BytesWritten() != int64(len("short and stout")) {
		t.Fatalf("unexpected byte count %d", rec.BytesWritten())
	}
}

func TestHTTPObsCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics("test", nil, reg)
	handler := HTTPObs{Metrics: metrics}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/process/book", nil))

	count := testutil.ToFloat64(metrics.ReqTotal.WithLabelValues(http.MethodPost, "/process/book", "400"))
	if count != 1 {
		t.Fatalf("expected one counted request, got %v", count)
	}
}

func TestNewFormMetricsRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewFormMetrics("test", reg)
	second := NewFormMetrics("test", reg)
	if first.SubmissionsTotal != second.SubmissionsTotal {
		t.Fatal("re-registration should return the existing collector")
	}
}
