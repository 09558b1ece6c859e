package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newMetrics(t *testing.T) *Metrics {
	t.Helper()
	m, err := New()
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}
	return m
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	return rec.Body.String()
}

func assertLine(t *testing.T, body, line string) {
	t.Helper()
	for _, l := range strings.Split(body, "\n") {
		if l == line {
			return
		}
	}
	t.Fatalf("metric line %q missing from exposition:\n%s", line, body)
}

func TestRecordCompletion(t *testing.T) {
	m := newMetrics(t)
	m.RecordCompletion("medium", 105)
	m.RecordCompletion("", 0)

	body := scrape(t, m)
	assertLine(t, body, `habitquest_progress_habits_completed_total{difficulty="medium"} 1`)
	assertLine(t, body, `habitquest_progress_habits_completed_total{difficulty="unknown"} 1`)
	assertLine(t, body, `habitquest_progress_coins_granted_total{source="completion"} 105`)
}

func TestRecordAchievement(t *testing.T) {
	m := newMetrics(t)
	m.RecordAchievement("streak_14", 300)
	m.RecordAchievement("streak_14", 0)

	body := scrape(t, m)
	assertLine(t, body, `habitquest_progress_achievements_granted_total{kind="streak_14"} 2`)
	assertLine(t, body, `habitquest_progress_coins_granted_total{source="achievement"} 300`)
}

func TestRecordRollover(t *testing.T) {
	m := newMetrics(t)
	m.RecordRollover()
	assertLine(t, scrape(t, m), `habitquest_progress_day_rollovers_total 1`)
}

func TestObserveHTTPRequest(t *testing.T) {
	m := newMetrics(t)
	m.ObserveHTTPRequest("get", "/api/habits", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodPost, "", http.StatusNotFound, time.Millisecond)

	body := scrape(t, m)
	assertLine(t, body, `habitquest_http_requests_total{method="GET",path="/api/habits",status="200"} 1`)
	assertLine(t, body, `habitquest_http_requests_total{method="POST",path="unmatched",status="404"} 1`)
}

func TestInstancesAreIsolated(t *testing.T) {
	a := newMetrics(t)
	b := newMetrics(t)
	a.RecordRollover()

	assertLine(t, scrape(t, a), `habitquest_progress_day_rollovers_total 1`)
	assertLine(t, scrape(t, b), `habitquest_progress_day_rollovers_total 0`)
}
