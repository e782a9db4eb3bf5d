package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feed metrics, registered on the default Prometheus registry and
// served at /metrics.
var (
	feedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sercha_feed",
		Name:      "requests_total",
		Help:      "Content feed requests by outcome.",
	}, []string{"status"})

	feedDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sercha_feed",
		Name:      "fetch_duration_seconds",
		Help:      "Time spent building the content feed.",
		Buckets:   prometheus.DefBuckets,
	})

	feedRecords = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sercha_feed",
		Name:      "records_per_request",
		Help:      "Records served per feed request.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
)
