package seedgo

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordDraw is called after each engine draw made by the facade.
	// op names the facade operation, err is nil if successful.
	RecordDraw(op string, err error)

	// RecordShuffle is called after each shuffle operation.
	// count is the number of elements shuffled, err is nil if successful.
	RecordShuffle(count int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDraw(string, error) {}
func (NoopMetricsCollector) RecordShuffle(int, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DrawCount     atomic.Int64
	DrawErrors    atomic.Int64
	ShuffleCount  atomic.Int64
	ShuffleItems  atomic.Int64
	ShuffleErrors atomic.Int64
}

// RecordDraw implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDraw(op string, err error) {
	b.DrawCount.Add(1)
	if err != nil {
		b.DrawErrors.Add(1)
	}
}

// RecordShuffle implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShuffle(count int, err error) {
	b.ShuffleCount.Add(1)
	b.ShuffleItems.Add(int64(count))
	if err != nil {
		b.ShuffleErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DrawCount:     b.DrawCount.Load(),
		DrawErrors:    b.DrawErrors.Load(),
		ShuffleCount:  b.ShuffleCount.Load(),
		ShuffleItems:  b.ShuffleItems.Load(),
		ShuffleErrors: b.ShuffleErrors.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DrawCount     int64
	DrawErrors    int64
	ShuffleCount  int64
	ShuffleItems  int64
	ShuffleErrors int64
}
