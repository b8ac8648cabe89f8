package metrics

import (
	"time"
)

// RecordStoreCall records the duration and outcome of one store call.
func RecordStoreCall(operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	StoreCallDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// RecordStoreUnavailable records a call that timed out or was rejected by the circuit breaker.
// Reason is "timeout" or "circuit_open".
func RecordStoreUnavailable(operation, reason string) {
	StoreUnavailableTotal.WithLabelValues(operation, reason).Inc()
}

// RecordArticleCreated records a newly submitted article.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordArticleVisit records one counted page view.
func RecordArticleVisit() {
	ArticleVisitsTotal.Inc()
}

// RecordArticleModerated records a status change.
func RecordArticleModerated(status string) {
	ArticlesModeratedTotal.WithLabelValues(status).Inc()
}

// RecordUserSignup records a signup attempt. created is false when the email was already registered.
func RecordUserSignup(created bool) {
	result := "created"
	if !created {
		result = "already_exists"
	}
	UserSignupsTotal.WithLabelValues(result).Inc()
}
