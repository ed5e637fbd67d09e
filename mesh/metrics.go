package mesh

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting registry metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each full index and ancestor build.
	// shapes is the number of indexed shapes, err is nil if successful.
	RecordBuild(duration time.Duration, shapes int, err error)

	// RecordLookup is called for every GetSubMesh. hit is false when the
	// shape had no index and no submesh could be synthesized.
	RecordLookup(hit bool)

	// RecordCompound is called after each compound submesh synthesis.
	// fresh is the number of newly indexed shapes.
	RecordCompound(duration time.Duration, fresh int, err error)

	// RecordReset is called when the registry drops its submeshes.
	RecordReset()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(time.Duration, int, error)    {}
func (NoopMetricsCollector) RecordLookup(bool)                        {}
func (NoopMetricsCollector) RecordCompound(time.Duration, int, error) {}
func (NoopMetricsCollector) RecordReset()                             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount         atomic.Int64
	BuildErrors        atomic.Int64
	BuildTotalNanos    atomic.Int64
	IndexedShapes      atomic.Int64
	LookupCount        atomic.Int64
	LookupMisses       atomic.Int64
	CompoundCount      atomic.Int64
	CompoundErrors     atomic.Int64
	CompoundTotalNanos atomic.Int64
	FreshShapes        atomic.Int64
	ResetCount         atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(duration time.Duration, shapes int, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.IndexedShapes.Store(int64(shapes))
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(hit bool) {
	b.LookupCount.Add(1)
	if !hit {
		b.LookupMisses.Add(1)
	}
}

// RecordCompound implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompound(duration time.Duration, fresh int, err error) {
	b.CompoundCount.Add(1)
	b.CompoundTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CompoundErrors.Add(1)
	}
	b.FreshShapes.Add(int64(fresh))
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset() {
	b.ResetCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:       b.BuildCount.Load(),
		BuildErrors:      b.BuildErrors.Load(),
		BuildAvgNanos:    avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		IndexedShapes:    b.IndexedShapes.Load(),
		LookupCount:      b.LookupCount.Load(),
		LookupMisses:     b.LookupMisses.Load(),
		CompoundCount:    b.CompoundCount.Load(),
		CompoundErrors:   b.CompoundErrors.Load(),
		CompoundAvgNanos: avg(b.CompoundTotalNanos.Load(), b.CompoundCount.Load()),
		FreshShapes:      b.FreshShapes.Load(),
		ResetCount:       b.ResetCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount       int64
	BuildErrors      int64
	BuildAvgNanos    int64
	IndexedShapes    int64
	LookupCount      int64
	LookupMisses     int64
	CompoundCount    int64
	CompoundErrors   int64
	CompoundAvgNanos int64
	FreshShapes      int64
	ResetCount       int64
}
