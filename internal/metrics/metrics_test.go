package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestHandlerExposesRecordedValues(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveRun("ok")
	m.ObserveRun("ok")
	m.ObserveRun("unauthorized")
	m.ObserveFetch(120*time.Millisecond, 20, true)
	m.SetSkillFrequencies(map[string]int{"sql": 7, "python": 4})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	out := string(body)

	for _, want := range []string{
		`skillmap_analysis_runs_total{outcome="ok"} 2`,
		`skillmap_analysis_runs_total{outcome="unauthorized"} 1`,
		`skillmap_skill_frequency{skill="sql"} 7`,
		`skillmap_jobs_fetched_count 1`,
		`skillmap_fetch_duration_seconds_count 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestObserveFetch_FailureSkipsPageSize(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveFetch(time.Second, 0, false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	out := rec.Body.String()

	if !strings.Contains(out, "skillmap_jobs_fetched_count 0") {
		t.Errorf("expected no page size observation:\n%s", out)
	}
}

func TestSetSkillFrequencies_ReplacesPreviousRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SetSkillFrequencies(map[string]int{"python": 2, "sql": 1, "java": 1})
	m.SetSkillFrequencies(map[string]int{"sql": 3})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var series []string
	for _, f := range families {
		if f.GetName() != "skillmap_skill_frequency" {
			continue
		}
		for _, metric := range f.GetMetric() {
			series = append(series, metric.GetLabel()[0].GetValue())
			if got := metric.GetGauge().GetValue(); got != 3 {
				t.Errorf("sql = %v, want 3", got)
			}
		}
	}
	if len(series) != 1 || series[0] != "sql" {
		t.Errorf("series = %v, want only sql", series)
	}
}
