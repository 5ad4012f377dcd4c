package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for operator execution.
var (
	// ErrEdgeListNil is returned when Advance is given a nil edge topology.
	ErrEdgeListNil = errors.New("engine: edge list is nil")

	// ErrFrontierMismatch is returned when a frontier's universe size does not
	// match the topology it is applied against.
	ErrFrontierMismatch = errors.New("engine: frontier universe mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")
)

// EdgeList is the read-only edge topology Advance iterates.
// Implementations report the current edge count and per-edge endpoints;
// erased edges may report sentinel endpoints, which strategies must tolerate.
type EdgeList interface {
	// Len is the number of current edges.
	Len() int
	// Endpoints returns the (source, destination) vertex ids of edge e.
	Endpoints(e int) (src, dst int)
}

// EdgeStrategy is the per-edge predicate/action pair an Advance application
// evaluates. PredicateEdge decides whether to act on edge e = (src,dst);
// ActionEdge performs the element-store mutation and reports whether e joins
// the next frontier.
//
// The predicate/action split is part of the operator contract even for
// strategies whose predicate is unconditionally true: other algorithms
// instantiate the same shape with real culling predicates.
type EdgeStrategy interface {
	PredicateEdge(src, dst, e int) bool
	ActionEdge(src, dst, e int) bool
}

// VertexStrategy is the per-element predicate/action pair a Filter
// application evaluates over a vertex set (or any dense position set).
type VertexStrategy interface {
	PredicateVertex(v int) bool
	ActionVertex(v int) bool
}

// Option configures operator execution via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the operator is invoked.
type Option func(*Options)

// Options holds the execution parameters of one operator application.
type Options struct {
	// Ctx allows cancellation; checked once per chunk.
	Ctx context.Context

	// Workers is the number of concurrent worker goroutines.
	Workers int

	// Grain is the minimum number of elements per worker chunk; small
	// frontiers collapse to fewer chunks rather than paying goroutine
	// overhead per element.
	Grain int

	// internal error recorded during option parsing
	err error
}

// defaultGrain balances scheduling overhead against load imbalance for the
// fine-grained per-element work these operators run.
const defaultGrain = 1024

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - GOMAXPROCS workers
//   - grain of 1024 elements per chunk.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Grain:   defaultGrain,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of worker goroutines.
//
//	n > 0:  use n workers
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithGrain sets the minimum chunk length.
//
//	n > 0:  chunks hold at least n elements
//	n <= 0: invalid option → ErrOptionViolation
func WithGrain(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Grain must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Grain = n
	}
}

// buildOptions folds opts over the defaults and surfaces any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
