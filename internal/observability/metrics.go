package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	queryDurationHist     *prometheus.HistogramVec
	seedRowCounter        *prometheus.CounterVec
	referenceCacheCounter *prometheus.CounterVec
)

// Init registers all Prometheus collectors.
func Init() {
	registerOnce.Do(func() {
		queryDurationHist = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ods_query_duration_seconds",
			Help:    "ODS read query latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"query"})

		seedRowCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seed_rows_total",
			Help: "Rows written during access-control provisioning",
		}, []string{"entity"})

		referenceCacheCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reference_cache_events_total",
			Help: "Reference-data cache outcomes",
		}, []string{"outcome"})

		prometheus.MustRegister(
			queryDurationHist,
			seedRowCounter,
			referenceCacheCounter,
		)
	})
}

func ObserveQuery(query string, duration time.Duration) {
	if queryDurationHist == nil {
		return
	}
	queryDurationHist.WithLabelValues(query).Observe(duration.Seconds())
}

func IncrementSeedRows(entity string, n int) {
	if seedRowCounter == nil {
		return
	}
	seedRowCounter.WithLabelValues(entity).Add(float64(n))
}

func IncrementReferenceCacheEvent(outcome string) {
	if referenceCacheCounter == nil {
		return
	}
	referenceCacheCounter.WithLabelValues(outcome).Inc()
}
