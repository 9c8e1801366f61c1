// Package coloring provides tunable options, error definitions, and the
// shared result type for the fold-coloring engines.
package coloring

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/foldcolor/core"
)

// Sentinel errors for engine execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrInvalidFoldCount is returned when the requested fold count is not
	// strictly positive.
	ErrInvalidFoldCount = errors.New("coloring: fold count must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")
)

// ColorID identifies one color in a run's palette.
//
// Colors are generated monotonically starting at 1 and are never reused
// with a different meaning once opened.
type ColorID int

// SaturationPolicy selects which saturation metric DSATUR ranks by.
type SaturationPolicy int

const (
	// SaturationTotal ranks by |assigned(v)| plus the number of distinct
	// colors held by v's neighbors.
	SaturationTotal SaturationPolicy = iota

	// SaturationOuter ranks by the number of distinct colors held by v's
	// neighbors only.
	SaturationOuter
)

// defaultInterchangeDepth bounds the interchange search when the caller
// does not tune it: one replacement color tried per blocking color.
const defaultInterchangeDepth = 1

// Option configures engine behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the engine is invoked.
type Option func(*Options)

// Options holds parameters shared by all three engines. Each engine reads
// only the knobs that concern it.
type Options struct {
	// Ctx allows cancellation and deadlines inside engine loops.
	Ctx context.Context

	// Policy selects the DSATUR saturation metric.
	Policy SaturationPolicy

	// InterchangeDepth bounds the ConnectedSequential interchange search:
	// the number of replacement colors tried per blocking color.
	// Zero disables interchange entirely (plain connected-sequential).
	InterchangeDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - SaturationTotal policy
//   - interchange depth 1
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Policy:           SaturationTotal,
		InterchangeDepth: defaultInterchangeDepth,
		err:              nil,
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

// WithSaturationPolicy selects the DSATUR ranking metric.
// Unknown values are invalid → ErrOptionViolation.
func WithSaturationPolicy(p SaturationPolicy) Option {
	return func(o *Options) {
		switch p {
		case SaturationTotal, SaturationOuter:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown saturation policy (%d)", ErrOptionViolation, p)
		}
	}
}

// WithInterchangeDepth bounds the interchange search.
//
//	d > 0: try up to d replacement colors per blocking color
//	d == 0: disable interchange (plain connected-sequential)
//	d < 0: invalid option → ErrOptionViolation
func WithInterchangeDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: InterchangeDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.InterchangeDepth = d
	}
}

// resolveOptions applies opts over defaults and surfaces any recorded
// violation.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// Result holds the outcome of one engine run on one graph:
//   - Coloring: per-vertex color sets, each sorted ascending and exactly
//     `folds` long.
//   - ColorsUsed: size of the palette the run opened.
type Result struct {
	Coloring   map[core.VertexID][]ColorID
	ColorsUsed int

	st *State
}

// State exposes the completed coloring state backing this Result, for
// color-class inspection.
func (r *Result) State() *State { return r.st }

// newResult snapshots a completed State.
func newResult(st *State) *Result {
	coloring := make(map[core.VertexID][]ColorID, len(st.live))
	for _, v := range st.live {
		set := st.assigned[v]
		colors := make([]ColorID, 0, len(set))
		for c := range set {
			colors = append(colors, c)
		}
		sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
		coloring[v] = colors
	}

	return &Result{
		Coloring:   coloring,
		ColorsUsed: st.ColorsUsed(),
		st:         st,
	}
}

// validate performs the fail-fast input checks shared by every engine,
// before any engine loop runs; no partial state leaks.
func validate(g *core.Graph, folds int, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	if folds <= 0 {
		return Options{}, ErrInvalidFoldCount
	}

	return resolveOptions(opts)
}
