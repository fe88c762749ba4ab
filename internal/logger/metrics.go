package logger

import (
	"sync"
	"time"
)

// Metrics tracks counters and timing measurements for a run. All methods
// are safe for concurrent use, keeping the interface ready for a future
// parallel month fetcher.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

var defaultMetrics = NewMetrics()

// NewMetrics creates an empty metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// IncrCounter increments a counter by 1, initializing it on first use.
func (m *Metrics) IncrCounter(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// RecordTiming records one duration measurement under the given name.
func (m *Metrics) RecordTiming(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], d)
}

// Snapshot returns a copy of all metrics: counters by name, and per-timing
// statistics (count, total, average, min, max) rendered as strings.
func (m *Metrics) Snapshot() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	counters := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		counters[k] = v
	}

	timings := make(map[string]map[string]interface{}, len(m.timings))
	for name, durations := range m.timings {
		if len(durations) == 0 {
			continue
		}

		var total time.Duration
		min, max := durations[0], durations[0]
		for _, d := range durations {
			total += d
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}

		timings[name] = map[string]interface{}{
			"count":   len(durations),
			"total":   total.String(),
			"average": (total / time.Duration(len(durations))).String(),
			"min":     min.String(),
			"max":     max.String(),
		}
	}

	return map[string]interface{}{
		"counters": counters,
		"timings":  timings,
	}
}

// IncrCounter increments a counter on the default metrics tracker.
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// RecordTiming records a timing on the default metrics tracker.
func RecordTiming(name string, d time.Duration) {
	defaultMetrics.RecordTiming(name, d)
}

// MetricsSnapshot returns a snapshot from the default metrics tracker.
func MetricsSnapshot() map[string]interface{} {
	return defaultMetrics.Snapshot()
}
