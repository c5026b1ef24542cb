package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PlannerAdds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlannerAdds,
			Help: HelpTextPlannerAdds,
		},
	)

	PlannerExpansions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlannerExpansions,
			Help: HelpTextPlannerExpansions,
		},
	)

	PlannerRemovals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlannerRemovals,
			Help: HelpTextPlannerRemovals,
		},
	)

	InventoryUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryUpdates,
			Help: HelpTextInventoryUpdates,
		},
		[]string{LabelOp},
	)

	SnapshotImports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotImports,
			Help: HelpTextSnapshotImports,
		},
		[]string{LabelResult},
	)

	SnapshotExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotExports,
			Help: HelpTextSnapshotExports,
		},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)
)
