package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ngoconnect_backend_requests_total",
		Help: "Requests sent to the REST backend by route and status code.",
	}, []string{"route", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ngoconnect_backend_request_duration_seconds",
		Help:    "Latency of requests sent to the REST backend.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)
