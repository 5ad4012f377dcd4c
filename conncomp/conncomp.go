// Package conncomp labels connected components with the same Advance/Filter
// operator contract the MST computation uses, via parallel label minimization:
// every vertex starts as its own label, each application lets an edge pull its
// source's label down to its destination's, and the loop runs to a fixed
// point. The minimum vertex id of a component wins as its label.
//
// The package exists as the second instantiation of the operator contract —
// it keeps the predicate/action split honest beyond the Borůvka strategies.
package conncomp

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/katalvlaran/lvlpar/csr"
	"github.com/katalvlaran/lvlpar/engine"
)

// ErrGraphNil is returned when a nil graph pointer is passed.
var ErrGraphNil = errors.New("conncomp: graph is nil")

// Option configures the component labeling via functional arguments.
type Option func(*Options)

// Options holds execution parameters forwarded to the operator applications.
type Options struct {
	// Ctx allows cancellation; observed between operator chunks.
	Ctx context.Context
	// Workers is the number of concurrent workers per application.
	Workers int
	// Grain is the minimum frontier chunk per worker.
	Grain int
}

// DefaultOptions mirrors the engine defaults.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: runtime.GOMAXPROCS(0), Grain: 1024}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of worker goroutines per application.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithGrain sets the minimum operator chunk length.
func WithGrain(n int) Option {
	return func(o *Options) { o.Grain = n }
}

// Result holds the component labeling.
type Result struct {
	// Labels[v] is the smallest vertex id of v's component.
	Labels []int
	// Count is the number of connected components.
	Count int
}

// labelMin is the per-edge strategy: pull the source's label down to the
// destination's when the destination's is smaller. The CAS loop retries only
// while other edges of the same source are lowering the label concurrently,
// and gives up as soon as the source's label is already small enough.
type labelMin struct {
	labels    []int64
	converged *atomic.Bool
}

func (labelMin) PredicateEdge(int, int, int) bool { return true }

func (s labelMin) ActionEdge(src, dst, _ int) bool {
	want := atomic.LoadInt64(&s.labels[dst])
	for {
		have := atomic.LoadInt64(&s.labels[src])
		if want >= have {
			return false
		}
		if atomic.CompareAndSwapInt64(&s.labels[src], have, want) {
			s.converged.Store(false)

			return true
		}
	}
}

// Components labels the connected components of g.
//
// Each Advance application lets every edge lower its source's label by one
// hop; the loop re-arms the convergence flag before each pass and stops when
// a pass changes nothing. Labels strictly decrease toward component minima,
// so the fixed point is reached in at most O(component diameter) passes.
//
// Error Conditions:
//   - ErrGraphNil               : g is nil.
//   - engine.ErrOptionViolation : invalid worker/grain settings.
//   - the context error         : the run was cancelled mid-pass.
//
// Complexity: O(E · diameter) work, O(V + E) memory.
func Components(g *csr.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	eo := []engine.Option{
		engine.WithContext(o.Ctx),
		engine.WithWorkers(o.Workers),
		engine.WithGrain(o.Grain),
	}

	// The first-generation arena doubles as the edge topology.
	a := csr.NewArena(g)
	labels := make([]int64, g.NumVertices)
	for v := range labels {
		labels[v] = int64(v)
	}

	edges := engine.Full(a.Len())
	var converged atomic.Bool
	for {
		converged.Store(true)
		if _, err := engine.Advance(a, edges, labelMin{labels: labels, converged: &converged}, eo...); err != nil {
			return nil, fmt.Errorf("conncomp: label pass: %w", err)
		}
		if converged.Load() {
			break
		}
	}

	res := &Result{Labels: make([]int, g.NumVertices)}
	for v, l := range labels {
		res.Labels[v] = int(l)
		if int(l) == v {
			res.Count++
		}
	}

	return res, nil
}
