package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/krisalay/simple-nav/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersTrackEvents(t *testing.T) {
	m := metrics.New()

	m.Hit()
	m.Hit()
	m.Miss()
	m.Expire()
	m.Eviction()
	m.Failure("set")

	if got := testutil.ToFloat64(m.CacheEvents("hit")); got != 2 {
		t.Fatalf("expected 2 hits, got %v", got)
	}
	if got := testutil.ToFloat64(m.CacheEvents("miss")); got != 1 {
		t.Fatalf("expected 1 miss, got %v", got)
	}
	if got := testutil.ToFloat64(m.CacheEvents("evict")); got != 1 {
		t.Fatalf("expected 1 eviction, got %v", got)
	}
	if got := testutil.ToFloat64(m.CacheFailures("set")); got != 1 {
		t.Fatalf("expected 1 set failure, got %v", got)
	}
}

func TestObserveSearch(t *testing.T) {
	m := metrics.New()

	m.ObserveSearch("match", time.Millisecond)
	m.ObserveSearch("none", time.Millisecond)
	m.ObserveSearch("match", time.Millisecond)

	if got := testutil.ToFloat64(m.SearchRequests("match")); got != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := metrics.New()
	m.Hit()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `simplenav_cache_events_total{event="hit"} 1`) {
		t.Fatalf("expected hit counter in exposition, got:\n%s", body)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *metrics.Metrics

	m.Hit()
	m.Failure("get")
	m.ObserveSearch("empty", 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 503 {
		t.Fatalf("expected 503 from nil metrics, got %d", rec.Code)
	}
}
