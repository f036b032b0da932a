package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dapur_upstream_request_duration_seconds",
			Help:    "Latency of generateContent calls by response status",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"status"},
	)

	malformedOutputs = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dapur_malformed_model_output_total",
			Help: "Model replies that were not valid recipe JSON and degraded to an empty result",
		},
	)
)
