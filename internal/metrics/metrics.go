package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the analysis run collectors.
type Metrics struct {
	runs           *prometheus.CounterVec
	fetchDuration  prometheus.Histogram
	jobsFetched    prometheus.Histogram
	skillFrequency *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skillmap_analysis_runs_total",
				Help: "Analysis runs by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skillmap_fetch_duration_seconds",
			Help:    "Duration of the jobs API search call",
			Buckets: prometheus.DefBuckets,
		}),
		jobsFetched: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skillmap_jobs_fetched",
			Help:    "Postings returned per successful search",
			Buckets: []float64{0, 1, 5, 10, 20, 50},
		}),
		skillFrequency: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skillmap_skill_frequency",
				Help: "Postings mentioning each ranked skill in the latest successful run",
			},
			[]string{"skill"},
		),
		gatherer: reg,
	}
}

// ObserveRun counts one finished run.
func (m *Metrics) ObserveRun(outcome string) {
	m.runs.WithLabelValues(outcome).Inc()
}

// ObserveFetch records the search latency and, on success, the page size.
func (m *Metrics) ObserveFetch(d time.Duration, jobs int, ok bool) {
	m.fetchDuration.Observe(d.Seconds())
	if ok {
		m.jobsFetched.Observe(float64(jobs))
	}
}

// SetSkillFrequencies replaces the published counts with counts. Skills
// ranked in an earlier run but absent now are dropped. Labels are vocabulary
// skills only.
func (m *Metrics) SetSkillFrequencies(counts map[string]int) {
	m.skillFrequency.Reset()
	for skill, count := range counts {
		m.skillFrequency.WithLabelValues(skill).Set(float64(count))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
