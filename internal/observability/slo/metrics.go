// Package slo tracks the API's service level indicators over a rolling window
// and exports them as Prometheus gauges next to the raw HTTP metrics.
package slo

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Targets for the public API.
const (
	// AvailabilitySLO is the share of non-5xx responses, in percent.
	AvailabilitySLO = 99.9

	// LatencySLO is the duration under which a response counts as fast.
	LatencySLO = 500 * time.Millisecond
)

var (
	availabilityRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_availability_ratio",
		Help: "Share of non-5xx responses over the rolling window (0-1), target: 0.999",
	})

	errorRateRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_error_rate_ratio",
		Help: "Share of 5xx responses over the rolling window (0-1), target: 0.001",
	})

	latencyRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_within_target_ratio",
		Help: "Share of responses faster than 500ms over the rolling window (0-1)",
	})
)

type bucket struct {
	start  time.Time
	total  int64
	errors int64
	slow   int64
}

// Tracker aggregates request outcomes into one-minute buckets and keeps the
// gauges current on every observation.
type Tracker struct {
	mu      sync.Mutex
	buckets []bucket
	size    time.Duration
	now     func() time.Time
}

// NewTracker returns a tracker whose window spans the given number of minutes.
func NewTracker(minutes int) *Tracker {
	if minutes <= 0 {
		minutes = 5
	}
	return &Tracker{
		buckets: make([]bucket, minutes),
		size:    time.Minute,
		now:     time.Now,
	}
}

// Default is the process-wide tracker fed by the HTTP metrics middleware.
var Default = NewTracker(5)

// Observe records one response.
func (t *Tracker) Observe(status int, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start := t.now().Truncate(t.size)
	idx := int(start.Unix()/int64(t.size/time.Second)) % len(t.buckets)
	b := &t.buckets[idx]
	if !b.start.Equal(start) {
		*b = bucket{start: start}
	}
	b.total++
	if status >= 500 {
		b.errors++
	}
	if duration > LatencySLO {
		b.slow++
	}

	availability, errorRate, fast := t.ratiosLocked(start)
	availabilityRatio.Set(availability)
	errorRateRatio.Set(errorRate)
	latencyRatio.Set(fast)
}

// Ratios returns availability, error rate and fast-response share over the window.
// With no traffic the service is reported as fully available.
func (t *Tracker) Ratios() (availability, errorRate, fast float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ratiosLocked(t.now().Truncate(t.size))
}

func (t *Tracker) ratiosLocked(current time.Time) (float64, float64, float64) {
	oldest := current.Add(-time.Duration(len(t.buckets)-1) * t.size)
	var total, errors, slow int64
	for _, b := range t.buckets {
		if b.total == 0 || b.start.Before(oldest) {
			continue
		}
		total += b.total
		errors += b.errors
		slow += b.slow
	}
	if total == 0 {
		return 1, 0, 1
	}
	errRate := float64(errors) / float64(total)
	return 1 - errRate, errRate, 1 - float64(slow)/float64(total)
}
