package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Limits configures a Throttle. Zero fields are unlimited.
type Limits struct {
	// BufferBytes caps the bytes held in encoded-but-unwritten blobs.
	BufferBytes int64
	// BytesPerSec caps write bandwidth.
	BytesPerSec int64
}

// Throttle enforces Limits. Safe for concurrent use.
type Throttle struct {
	limits   Limits
	buffer   *semaphore.Weighted // nil if unlimited
	io       *rate.Limiter       // nil if unlimited
	inflight atomic.Int64
}

// NewThrottle creates a throttle.
func NewThrottle(l Limits) *Throttle {
	t := &Throttle{limits: l}
	if l.BufferBytes > 0 {
		t.buffer = semaphore.NewWeighted(l.BufferBytes)
	}
	if l.BytesPerSec > 0 {
		t.io = rate.NewLimiter(rate.Limit(l.BytesPerSec), int(l.BytesPerSec))
	}
	return t
}

// clip keeps a single oversized request from waiting forever.
func (t *Throttle) clip(n int64) int64 {
	if t.limits.BufferBytes > 0 && n > t.limits.BufferBytes {
		return t.limits.BufferBytes
	}
	return n
}

// AcquireBuffer blocks until n bytes of buffer are available. A request
// larger than the whole budget waits for the budget to drain and then
// takes all of it.
func (t *Throttle) AcquireBuffer(ctx context.Context, n int64) error {
	if t == nil || n <= 0 {
		return nil
	}
	if t.buffer != nil {
		if err := t.buffer.Acquire(ctx, t.clip(n)); err != nil {
			return err
		}
	}
	t.inflight.Add(n)
	return nil
}

// TryAcquireBuffer is AcquireBuffer without blocking.
func (t *Throttle) TryAcquireBuffer(n int64) bool {
	if t == nil || n <= 0 {
		return true
	}
	if t.buffer != nil && !t.buffer.TryAcquire(t.clip(n)) {
		return false
	}
	t.inflight.Add(n)
	return true
}

// ReleaseBuffer returns n bytes taken by AcquireBuffer.
func (t *Throttle) ReleaseBuffer(n int64) {
	if t == nil || n <= 0 {
		return
	}
	if t.buffer != nil {
		t.buffer.Release(t.clip(n))
	}
	t.inflight.Add(-n)
}

// InFlight returns the bytes currently held.
func (t *Throttle) InFlight() int64 {
	if t == nil {
		return 0
	}
	return t.inflight.Load()
}

// WaitIO waits until n bytes may be written. Requests above the burst are
// split.
func (t *Throttle) WaitIO(ctx context.Context, n int) error {
	if t == nil || t.io == nil {
		return nil
	}
	burst := t.io.Burst()
	for n > 0 {
		step := min(n, burst)
		if err := t.io.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
