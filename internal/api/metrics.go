package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Terminal states of a generate request.
const (
	outcomeMethodNotAllowed    = "method_not_allowed"
	outcomeInvalidInput        = "invalid_input"
	outcomeServerMisconfigured = "server_misconfigured"
	outcomeUpstreamError       = "upstream_error"
	outcomeInternalError       = "internal_error"
	outcomeSuccess             = "success"
)

var generateOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dapur_generate_outcomes_total",
		Help: "Generate requests by terminal state",
	},
	[]string{"outcome"},
)
