package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync holds the Prometheus collectors for the sync engine.
type Sync struct {
	// Runs counts sync runs by mode and outcome.
	Runs *prometheus.CounterVec
	// Records counts per-record upsert attempts by outcome.
	Records *prometheus.CounterVec
	// RunDuration observes wall time per run.
	RunDuration prometheus.Histogram
}

// NewSync registers the sync collectors on the given registerer.
func NewSync(reg prometheus.Registerer) *Sync {
	factory := promauto.With(reg)
	return &Sync{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "postsync",
			Name:      "runs_total",
			Help:      "Sync runs by mode and outcome.",
		}, []string{"mode", "outcome"}),
		Records: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "postsync",
			Name:      "records_total",
			Help:      "Record upsert attempts by outcome.",
		}, []string{"outcome"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "postsync",
			Name:      "run_duration_seconds",
			Help:      "Wall time per sync run.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
