package bitpool

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAcquire is called after each Acquire. index is the allocated
	// index, or -1 if the pool was exhausted.
	RecordAcquire(index int)

	// RecordRelease is called after each Release. freed is true if the call
	// actually returned an index to the pool, false for the tolerated
	// no-op cases (out-of-range handle, double release).
	RecordRelease(index int, freed bool)

	// RecordRefresh is called after each Refresh or RefreshHint. full is
	// true when the hierarchy was fully rebuilt, false for the cursor-only
	// fast path.
	RecordRefresh(full bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAcquire(int)       {}
func (NoopMetricsCollector) RecordRelease(int, bool) {}
func (NoopMetricsCollector) RecordRefresh(bool)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
//
// The counters are atomic and safe to read while a single goroutine mutates
// the pool. Read them with Load.
type BasicMetricsCollector struct {
	AcquireCount     atomic.Int64
	ExhaustionCount  atomic.Int64
	ReleaseCount     atomic.Int64
	ReleaseNoopCount atomic.Int64
	RefreshCount     atomic.Int64
	RebuildCount     atomic.Int64
}

// RecordAcquire implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAcquire(index int) {
	b.AcquireCount.Add(1)
	if index < 0 {
		b.ExhaustionCount.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(index int, freed bool) {
	b.ReleaseCount.Add(1)
	if !freed {
		b.ReleaseNoopCount.Add(1)
	}
}

// RecordRefresh implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRefresh(full bool) {
	b.RefreshCount.Add(1)
	if full {
		b.RebuildCount.Add(1)
	}
}
