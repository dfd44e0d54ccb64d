package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "youtube_client",
			Name:      "api_requests_total",
			Help:      "YouTube API calls that completed with an HTTP status.",
		},
		[]string{"operation", "code"},
	)

	apiRequestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "youtube_client",
			Name:      "api_request_failures_total",
			Help:      "YouTube API calls that failed before an HTTP status was received.",
		},
		[]string{"operation"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "youtube_client",
			Name:      "api_request_duration_seconds",
			Help:      "Round-trip duration of successful YouTube API calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
