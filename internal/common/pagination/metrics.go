package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts paginated requests.
	// Labels: resource (articles, users), status (HTTP status code), page_range (1-10, 11-50, ...)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_requests_total",
			Help: "Total number of pagination requests",
		},
		[]string{"resource", "status", "page_range"},
	)

	// CollectionSize tracks the latest total count returned for a paginated collection.
	CollectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pagination_collection_size",
			Help: "Total number of documents reported by the last paginated count",
		},
		[]string{"resource"},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: resource, type (validation, store)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"resource", "type"},
	)
)

// RecordRequest records a pagination request metric.
func RecordRequest(resource string, statusCode int, page int) {
	RequestsTotal.WithLabelValues(resource, strconv.Itoa(statusCode), getPageRangeBucket(page)).Inc()
}

// UpdateCollectionSize records the total count of a paginated collection.
func UpdateCollectionSize(resource string, count int64) {
	CollectionSize.WithLabelValues(resource).Set(float64(count))
}

// RecordError records an error metric. errorType is "validation" or "store".
func RecordError(resource, errorType string) {
	ErrorsTotal.WithLabelValues(resource, errorType).Inc()
}

func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
