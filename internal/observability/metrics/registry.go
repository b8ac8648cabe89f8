package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store metrics track latency and failures of document store calls
var (
	// StoreCallDuration measures store call duration in seconds
	StoreCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_call_duration_seconds",
			Help:    "Document store call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "outcome"},
	)

	// StoreUnavailableTotal counts calls rejected by timeout or open circuit
	StoreUnavailableTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_unavailable_total",
			Help: "Total number of store calls that timed out or hit an open circuit",
		},
		[]string{"operation", "reason"},
	)
)

// Business metrics track domain-specific activity
var (
	// ArticlesCreatedTotal counts submitted articles
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles submitted",
		},
	)

	// ArticleVisitsTotal counts recorded page views
	ArticleVisitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_visits_total",
			Help: "Total number of article visits recorded",
		},
	)

	// ArticlesModeratedTotal counts status transitions by target status
	ArticlesModeratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_moderated_total",
			Help: "Total number of article status changes by resulting status",
		},
		[]string{"status"},
	)

	// UserSignupsTotal counts signup attempts by result (created, already_exists)
	UserSignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_signups_total",
			Help: "Total number of user creation attempts by result",
		},
		[]string{"result"},
	)
)
