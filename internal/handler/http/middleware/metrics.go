package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rateLimitDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_decisions_total",
			Help: "Rate limit decisions by scope and result",
		},
		[]string{"scope", "result"},
	)

	rateLimitActiveKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rate_limit_active_keys",
			Help: "Number of client buckets currently tracked",
		},
		[]string{"scope"},
	)
)
