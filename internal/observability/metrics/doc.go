// Package metrics provides the Prometheus collectors for domain and store activity.
//
// HTTP request metrics live next to the HTTP middleware; this package covers
// what happens behind the handlers:
//   - store call latency and outcome, per operation
//   - store unavailability (timeouts and open circuit)
//   - article creation, visits and moderation decisions
//   - user signups, including repeated signups for an existing email
//
// All metrics are registered with the Prometheus default registry and exposed via /metrics.
//
// Example usage:
//
//	start := time.Now()
//	err := repo.IncrementVisits(ctx, id)
//	metrics.RecordStoreCall("article.increment_visit", time.Since(start), err)
package metrics
