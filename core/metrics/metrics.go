package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes recorded per adapter call.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomePanic   = "panic"
	OutcomeMissing = "missing_source"
)

// Metrics holds the collectors of the aggregation pipeline.
type Metrics struct {
	SourceFetches      *prometheus.CounterVec
	SourceDuration     *prometheus.HistogramVec
	UnresolvedBranches *prometheus.CounterVec
	Refreshes          prometheus.Counter
	CacheHits          prometheus.Counter
}

// New registers the collectors with reg. A nil registerer falls back to a private
// registry so tests can create as many instances as they like.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		SourceFetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passfinder",
			Name:      "source_fetches_total",
			Help:      "Adapter calls by source, system, pass type and outcome.",
		}, []string{"source", "system", "pass", "outcome"}),
		SourceDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "passfinder",
			Name:      "source_fetch_duration_seconds",
			Help:      "Adapter call latency.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"source"}),
		UnresolvedBranches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passfinder",
			Name:      "unresolved_branches_total",
			Help:      "Reported branch names that matched no canonical location.",
		}, []string{"system", "source"}),
		Refreshes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "passfinder",
			Name:      "aggregation_cycles_total",
			Help:      "Full aggregation cycles run.",
		}),
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "passfinder",
			Name:      "cache_hits_total",
			Help:      "Requests served from the availability cache.",
		}),
	}
}

// ObserveFetch records one adapter call. Safe on a nil receiver.
func (m *Metrics) ObserveFetch(source, system, pass, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SourceFetches.WithLabelValues(source, system, pass, outcome).Inc()
	m.SourceDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// Unresolved records a dropped branch name. Safe on a nil receiver.
func (m *Metrics) Unresolved(system, source string) {
	if m == nil {
		return
	}
	m.UnresolvedBranches.WithLabelValues(system, source).Inc()
}

// Refreshed records a full aggregation cycle. Safe on a nil receiver.
func (m *Metrics) Refreshed() {
	if m == nil {
		return
	}
	m.Refreshes.Inc()
}

// CacheHit records a cached response. Safe on a nil receiver.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}
