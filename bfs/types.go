package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for component discovery.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures Components via functional arguments.
// If an Option is invalid (e.g. a nil predicate), it is recorded
// internally and surfaced as ErrOptionViolation when Components is invoked.
type Option func(*Options)

// Options holds the parameters of a component search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeued vertex.
	Ctx context.Context

	// KeepVertex selects the vertices taking part. Others are neither
	// seeds nor traversed.
	KeepVertex func(v int) bool

	// KeepEdge selects the edges followed, called for each curr→neighbor
	// step. Parallel edges share one call.
	KeepEdge func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - every vertex kept
//   - every edge followed
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		KeepVertex: func(int) bool { return true },
		KeepEdge:   func(_, _ int) bool { return true },
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: Ctx cannot be nil", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithKeepVertex restricts the search to vertices for which fn is true.
func WithKeepVertex(fn func(v int) bool) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: KeepVertex cannot be nil", ErrOptionViolation)
			return
		}
		o.KeepVertex = fn
	}
}

// WithKeepEdge follows only the steps curr→neighbor for which fn is true.
// fn must be symmetric for components to be well defined.
func WithKeepEdge(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: KeepEdge cannot be nil", ErrOptionViolation)
			return
		}
		o.KeepEdge = fn
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
