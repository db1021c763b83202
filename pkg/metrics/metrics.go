package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Backend bridge metrics
	BridgeInvocations *prometheus.CounterVec
	BridgeFailures    *prometheus.CounterVec
	BridgeLatency     *prometheus.HistogramVec

	// Attendance queue metrics
	QueueReloads          prometheus.Counter
	AttendancesCompleted  prometheus.Counter
	StaleResultsDiscarded prometheus.Counter

	// Catalog cache metrics
	CatalogLoads     prometheus.Counter
	CatalogLoadFails prometheus.Counter
	CatalogHits      prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		BridgeInvocations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bridge_invocations_total",
			Help:      "Total number of backend command invocations",
		}, []string{"command"}),
		BridgeFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bridge_failures_total",
			Help:      "Total number of failed backend command invocations",
		}, []string{"command"}),
		BridgeLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bridge_invocation_duration_seconds",
			Help:      "Time spent in backend command invocations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"command"}),
		QueueReloads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "queue_reloads_total",
			Help:      "Total number of attendance queue reloads",
		}),
		AttendancesCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "attendances_completed_total",
			Help:      "Total number of attendances marked as done",
		}),
		StaleResultsDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stale_results_discarded_total",
			Help:      "Async results discarded by the request version guard",
		}),
		CatalogLoads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "catalog_loads_total",
			Help:      "Total number of exam catalog fetches from the backend",
		}),
		CatalogLoadFails: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "catalog_load_failures_total",
			Help:      "Total number of failed exam catalog fetches",
		}),
		CatalogHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "catalog_cache_hits_total",
			Help:      "Catalog reads served from the in-process cache",
		}),
	}
}
