package dynvec

import "sync/atomic"

// MetricsCollector receives buffer lifecycle events.
// Implement this interface to integrate with monitoring systems.
//
// Collectors may be shared between vectors and must be safe for
// concurrent use if those vectors are used from several goroutines.
type MetricsCollector interface {
	// RecordGrow is called after the buffer grew from one capacity to another.
	RecordGrow(fromCap, toCap int)

	// RecordShrink is called after ShrinkToFit or Init reduced the capacity.
	RecordShrink(fromCap, toCap int)

	// RecordRelease is called when a buffer is dropped by Release.
	RecordRelease(capacity int)

	// RecordAllocFailure is called when an allocation is refused.
	RecordAllocFailure(requestedCap int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)    {}
func (NoopMetricsCollector) RecordShrink(int, int)  {}
func (NoopMetricsCollector) RecordRelease(int)      {}
func (NoopMetricsCollector) RecordAllocFailure(int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount     atomic.Int64
	GrowElements  atomic.Int64
	ShrinkCount   atomic.Int64
	ReleaseCount  atomic.Int64
	AllocFailures atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(fromCap, toCap int) {
	b.GrowCount.Add(1)
	b.GrowElements.Add(int64(toCap - fromCap))
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(int, int) {
	b.ShrinkCount.Add(1)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(int) {
	b.ReleaseCount.Add(1)
}

// RecordAllocFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocFailure(int) {
	b.AllocFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:     b.GrowCount.Load(),
		GrowElements:  b.GrowElements.Load(),
		ShrinkCount:   b.ShrinkCount.Load(),
		ReleaseCount:  b.ReleaseCount.Load(),
		AllocFailures: b.AllocFailures.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount     int64
	GrowElements  int64
	ShrinkCount   int64
	ReleaseCount  int64
	AllocFailures int64
}
