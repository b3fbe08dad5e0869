package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guideme_http_requests_total",
		Help: "Total number of HTTP requests served by the site",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "guideme_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	SearchSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guideme_search_submissions_total",
		Help: "Search form submissions by outcome",
	}, []string{"outcome"})

	SearchBackendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "guideme_search_backend_duration_seconds",
		Help:    "Time spent waiting on the search backend",
		Buckets: []float64{0.1, 0.5, 1, 1.5, 2, 5},
	})

	LikesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guideme_guide_likes_total",
		Help: "Guide like and unlike actions",
	}, []string{"action"})

	LaunchSubscriptionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guideme_launch_subscriptions_total",
		Help: "Visitors who asked to be notified when the guide catalog launches",
	})
)

const (
	OutcomeInvalid    = "invalid"
	OutcomeInProgress = "in_progress"
	OutcomeFailed     = "failed"
	OutcomeRedirected = "redirected"
	OutcomeDelivered  = "delivered"
)
