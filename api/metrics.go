package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "announcements_http_requests_total",
		Help: "Count of HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "announcements_http_request_duration_seconds",
		Help:    "Duration of HTTP requests by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)
