// Package truss provides tunable options and error definitions
// for truss decomposition over a core.Graph.
package truss

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Sentinel errors for truss decomposition.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("truss: graph is nil")

	// ErrMalformedGraph is returned when the support vector or a triangle
	// does not agree with the graph topology.
	ErrMalformedGraph = errors.New("truss: malformed graph")

	// ErrResourceExhausted is returned when the graph exceeds a configured
	// edge or triangle limit; no partial result is produced.
	ErrResourceExhausted = errors.New("truss: resource limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("truss: invalid option supplied")

	// ErrInvalidTrussness is returned by Verify when a value breaks the
	// k-truss definition.
	ErrInvalidTrussness = errors.New("truss: invalid trussness")
)

// Option configures decomposition via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// Trussness or Decompose is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a decomposition.
type Options struct {
	// Logger receives debug lines per peeling level. Defaults to a
	// logger writing to io.Discard.
	Logger *log.Logger

	// OnFinalize is called once per edge when its trussness is fixed,
	// in finalization order.
	OnFinalize func(eid, k int)

	// Rand, if non-nil, pops edges from a level bucket uniformly at random.
	// When nil the most recently bucketed edge is popped.
	Rand *rand.Rand

	// MaxEdges, if > 0, rejects graphs with more edges.
	MaxEdges int

	// MaxTriangles, if > 0, rejects graphs with more triangle instances.
	// It also bounds the number of support levels, which is what the
	// level buckets are sized by.
	MaxTriangles int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - discarding logger
//   - no-op OnFinalize
//   - deterministic pop order
//   - no size limits
func DefaultOptions() Options {
	return Options{
		Logger:       log.New(io.Discard),
		OnFinalize:   func(int, int) {},
		Rand:         nil,
		MaxEdges:     0,
		MaxTriangles: 0,
		err:          nil,
	}
}

// WithLogger routes per-level debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnFinalize registers a callback run when an edge is finalized.
func WithOnFinalize(fn func(eid, k int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithRand pops edges within a level in random order drawn from r.
// The computed trussness does not change; the option exists to exercise
// order independence.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: Rand cannot be nil", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithMaxEdges limits the accepted edge count.
//
//	n > 0: graphs with more than n edges fail with ErrResourceExhausted
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxEdges(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxEdges cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxEdges = n
	}
}

// WithMaxTriangles limits the accepted number of triangle instances,
// counted with multiplicity on multigraphs.
//
//	n > 0: more than n instances fail with ErrResourceExhausted
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxTriangles(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTriangles cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTriangles = n
	}
}

// resolve applies opts over DefaultOptions and returns the first violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
