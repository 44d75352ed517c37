package pathfinder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for gridpath_pathfinder_requests_total.
const (
	outcomeQueued      = "queued"
	outcomeRejected    = "rejected"
	outcomeLineOfSight = "line_of_sight"
	outcomeCancelled   = "cancelled"
)

// Result label values for gridpath_pathfinder_executions_total.
const (
	resultFound    = "found"
	resultNotFound = "not_found"
	resultCached   = "cached"
)

type metrics struct {
	requests   *prometheus.CounterVec
	executions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	queueDepth prometheus.Gauge
	cacheHits  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpath",
			Subsystem: "pathfinder",
			Name:      "requests_total",
			Help:      "Path requests submitted, by outcome.",
		}, []string{"outcome"}),
		executions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpath",
			Subsystem: "pathfinder",
			Name:      "executions_total",
			Help:      "Path requests executed, by algorithm and result.",
		}, []string{"algorithm", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Subsystem: "pathfinder",
			Name:      "execution_seconds",
			Help:      "Time spent searching and reprocessing one request.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"algorithm"}),
		queueDepth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "gridpath",
			Subsystem: "pathfinder",
			Name:      "queue_depth",
			Help:      "Requests waiting for a tick.",
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "gridpath",
			Subsystem: "pathfinder",
			Name:      "cache_hits_total",
			Help:      "Requests answered from the result cache.",
		}),
	}
}
