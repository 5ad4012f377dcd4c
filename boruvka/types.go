package boruvka

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlpar/engine"
)

// ErrGraphNil is returned when a nil graph pointer is passed.
var ErrGraphNil = errors.New("boruvka: graph is nil")

// Option configures the MST orchestrator via functional arguments.
type Option func(*Options)

// Options holds the orchestrator's execution parameters. Worker and grain
// settings are forwarded to every Advance/Filter application; invalid values
// surface as engine.ErrOptionViolation from the first phase that runs.
type Options struct {
	// Ctx allows cancellation; observed between operator chunks.
	Ctx context.Context

	// Workers is the number of concurrent workers per operator application.
	Workers int

	// Grain is the minimum frontier chunk per worker.
	Grain int

	// Logger receives one structured record per contraction round.
	Logger *zap.Logger
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - GOMAXPROCS workers, engine default grain
//   - a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Grain:   1024,
		Logger:  zap.NewNop(),
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

// WithWorkers sets the number of worker goroutines per operator application.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithGrain sets the minimum operator chunk length.
func WithGrain(n int) Option {
	return func(o *Options) { o.Grain = n }
}

// WithLogger sets the structured logger for per-round progress records.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// engineOpts forwards the execution parameters to one operator application.
func (o Options) engineOpts() []engine.Option {
	return []engine.Option{
		engine.WithContext(o.Ctx),
		engine.WithWorkers(o.Workers),
		engine.WithGrain(o.Grain),
	}
}

// Result is the outcome of one MST computation.
//
// InMST is addressed by input edge id: InMST[i] is true iff input edge i
// belongs to the minimum spanning forest. On termination the number of set
// entries equals NumVertices − Components.
type Result struct {
	// InMST marks input edges that belong to the spanning forest.
	InMST []bool

	// Edges is the number of forest edges (set entries of InMST).
	Edges int

	// TotalWeight is the sum of forest edge weights.
	TotalWeight int64

	// Components is the number of connected components discovered.
	Components int

	// Rounds is the number of contraction rounds the outer loop ran.
	Rounds int
}
