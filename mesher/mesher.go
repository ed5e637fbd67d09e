package mesher

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesh"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Mesher fills submesh element storage below a target shape.
//
// Mesh is called on one goroutine while Progress may be polled from
// another. Mesh must return promptly once ctx is done.
type Mesher interface {
	Name() string
	Mesh(ctx context.Context, reg *mesh.Mesh, target shape.Shape, p Params) error
	// Progress returns the completed fraction in [0, 1].
	Progress() float64
}

// Tracker is a progress fraction shared between a mesher and its poller.
// The zero value reports 0.
type Tracker struct {
	bits atomic.Uint64
}

// Set stores f clamped to [0, 1].
func (t *Tracker) Set(f float64) {
	t.bits.Store(math.Float64bits(min(max(f, 0), 1)))
}

// Get returns the last stored fraction.
func (t *Tracker) Get() float64 {
	return math.Float64frombits(t.bits.Load())
}

const defaultPollInterval = 100 * time.Millisecond

type runOptions struct {
	logger   *mesh.Logger
	progress func(float64)
	interval time.Duration
	logEvery time.Duration
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithLogger sets the logger. Pass nil to disable logging.
func WithLogger(l *mesh.Logger) RunOption {
	return func(o *runOptions) {
		o.logger = l
	}
}

// WithProgress registers a callback receiving the polled progress. It runs
// on the poller goroutine and is never called after Run returns.
func WithProgress(fn func(float64)) RunOption {
	return func(o *runOptions) {
		o.progress = fn
	}
}

// WithPollInterval sets how often progress is polled.
func WithPollInterval(d time.Duration) RunOption {
	return func(o *runOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithLogInterval sets the minimum spacing of progress log lines.
func WithLogInterval(d time.Duration) RunOption {
	return func(o *runOptions) {
		o.logEvery = d
	}
}

// Run meshes target with m while polling its progress.
//
// The target must be known to reg: an indexed shape or a compound the
// registry can synthesize. Run returns mesh.ErrNotIndexed otherwise. The
// poller goroutine has exited by the time Run returns.
func Run(ctx context.Context, m Mesher, reg *mesh.Mesh, target shape.Shape, p Params, opts ...RunOption) error {
	o := runOptions{
		interval: defaultPollInterval,
		logEvery: time.Second,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = mesh.NoopLogger()
	}

	if shape.IsNull(target) || reg.GetSubMesh(target) == nil {
		return fmt.Errorf("%s: %w", m.Name(), mesh.ErrNotIndexed)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s: %w", m.Name(), err)
	}

	logger := o.logger.WithShape(target)
	logger.InfoContext(ctx, "meshing started",
		"mesher", m.Name(),
		"algorithm", string(p.Algorithm),
		"max_size", p.MaxSize,
	)
	start := time.Now()

	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(done)
		return m.Mesh(gctx, reg, target, p)
	})

	g.Go(func() error {
		ticker := time.NewTicker(o.interval)
		defer ticker.Stop()

		sometimes := rate.Sometimes{Interval: o.logEvery}
		report := func() {
			f := m.Progress()
			if o.progress != nil {
				o.progress(f)
			}
			sometimes.Do(func() {
				logger.DebugContext(gctx, "meshing progress", "mesher", m.Name(), "progress", f)
			})
		}

		for {
			select {
			case <-done:
				report()
				return nil
			case <-ticker.C:
				report()
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "meshing failed", "mesher", m.Name(), "error", err)
		return fmt.Errorf("%s: %w", m.Name(), err)
	}

	nodes, cells := reg.CountBelow(target)
	logger.InfoContext(ctx, "meshing finished",
		"mesher", m.Name(),
		"nodes", nodes,
		"cells", cells,
		"took", time.Since(start),
	)
	return nil
}
