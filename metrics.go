package vecmath

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting compression metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCompress is called after each Compressor decision.
	// from and to are the source and result representations; they are equal
	// when the representation was kept.
	RecordCompress(from, to Kind, size, nonZero int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompress(Kind, Kind, int, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	CompressCount  atomic.Int64
	ToDenseCount   atomic.Int64
	ToSparseCount  atomic.Int64
	KeptCount      atomic.Int64
	ElementsSeen   atomic.Int64
	NonZeroEntries atomic.Int64
}

// RecordCompress implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompress(from, to Kind, size, nonZero int) {
	b.CompressCount.Add(1)
	b.ElementsSeen.Add(int64(size))
	b.NonZeroEntries.Add(int64(nonZero))

	switch {
	case from == to:
		b.KeptCount.Add(1)
	case to == KindDense:
		b.ToDenseCount.Add(1)
	default:
		b.ToSparseCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		CompressCount:  b.CompressCount.Load(),
		ToDenseCount:   b.ToDenseCount.Load(),
		ToSparseCount:  b.ToSparseCount.Load(),
		KeptCount:      b.KeptCount.Load(),
		ElementsSeen:   b.ElementsSeen.Load(),
		NonZeroEntries: b.NonZeroEntries.Load(),
	}
	if stats.ElementsSeen > 0 {
		stats.Density = float64(stats.NonZeroEntries) / float64(stats.ElementsSeen)
	}
	return stats
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	CompressCount  int64
	ToDenseCount   int64
	ToSparseCount  int64
	KeptCount      int64
	ElementsSeen   int64
	NonZeroEntries int64
	// Density is NonZeroEntries / ElementsSeen over all recorded decisions.
	Density float64
}
