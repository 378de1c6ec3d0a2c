package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreQueries counts round trips per backing store and outcome.
	StoreQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buildsense_store_queries_total",
		Help: "Store round trips by store and outcome.",
	}, []string{"store", "outcome"})

	// StoreQueryDuration observes round-trip latency per backing store.
	StoreQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "buildsense_store_query_duration_seconds",
		Help:    "Store round trip duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"store"})

	// ZoneInspections counts zone metric inspections by goal.
	ZoneInspections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buildsense_zone_inspections_total",
		Help: "Zone inspections by aggregation goal.",
	}, []string{"goal"})
)

// ObserveQuery records one store round trip.
func ObserveQuery(store string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	StoreQueries.WithLabelValues(store, outcome).Inc()
	StoreQueryDuration.WithLabelValues(store).Observe(elapsed.Seconds())
}
