package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// tokensIssuedTotal counts /jwt calls by delivery (bearer | cookie) and result.
	tokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_tokens_issued_total",
			Help: "Token issuance requests by delivery and result",
		},
		[]string{"delivery", "result"},
	)

	// authRequestsTotal counts guard decisions by guard (authenticated | admin | self) and result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Access guard decisions by guard and result",
		},
		[]string{"guard", "result"},
	)

	adminCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_admin_check_duration_seconds",
			Help:    "Duration of the administrator lookup performed by the admin guard",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// forbiddenAttempts counts 403 answers by guard and method.
	forbiddenAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forbidden_attempts_total",
			Help: "Forbidden access attempts by guard and method",
		},
		[]string{"guard", "method"},
	)
)

// RecordTokenIssued records a /jwt outcome.
func RecordTokenIssued(delivery, result string) {
	tokensIssuedTotal.WithLabelValues(delivery, result).Inc()
}

// RecordAuthRequest records a guard decision.
func RecordAuthRequest(guard, result string) {
	authRequestsTotal.WithLabelValues(guard, result).Inc()
}

// RecordAdminCheckDuration records how long the admin lookup took.
func RecordAdminCheckDuration(durationSeconds float64) {
	adminCheckDuration.Observe(durationSeconds)
}

// RecordForbiddenAttempt records a forbidden access attempt.
func RecordForbiddenAttempt(guard, method string) {
	forbiddenAttempts.WithLabelValues(guard, method).Inc()
}
