// Package search provides tunable options, result types and error
// definitions for uninformed maze search.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazesolver/frontier"
	"github.com/katalvlaran/mazesolver/maze"
)

// Sentinel errors for search execution.
var (
	// ErrNoSolution is returned when the frontier empties before the goal is reached.
	ErrNoSolution = errors.New("search: no solution")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures Solve via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds the context and callbacks of a search run.
type Options struct {
	// Ctx is checked before every expansion; once done, Solve returns
	// Ctx.Err() with the partial Result.
	Ctx context.Context

	// OnExpand is called right after a node is removed from the frontier,
	// with the explored-count including that node. A returned error aborts
	// the search and is propagated wrapped.
	OnExpand func(n frontier.Node, explored int) error

	// OnEnqueue is called for every child node added to the frontier.
	OnEnqueue func(n frontier.Node)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExpand:  func(frontier.Node, int) error { return nil },
		OnEnqueue: func(frontier.Node) {},
	}
}

// WithContext sets a context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: context is nil", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(n frontier.Node, explored int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnExpand hook is nil", ErrOptionViolation)
			return
		}
		o.OnExpand = fn
	}
}

// WithOnEnqueue registers a callback run whenever a child joins the frontier.
func WithOnEnqueue(fn func(n frontier.Node)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnEnqueue hook is nil", ErrOptionViolation)
			return
		}
		o.OnEnqueue = fn
	}
}

// Result holds the outcome of one Solve call:
//   - Algorithm: the frontier discipline used.
//   - Actions / Cells: the path from start (exclusive) to goal (inclusive),
//     as parallel slices; both nil when no solution exists.
//   - Explored: number of nodes removed from the frontier.
//   - ExploredCells: cells added to the explored set, in expansion order
//     (the goal is never among them).
type Result struct {
	Algorithm     frontier.Kind
	Actions       []maze.Direction
	Cells         []maze.Cell
	Explored      int
	ExploredCells []maze.Cell
}

// Solved reports whether a path was found.
func (r *Result) Solved() bool {
	return r.Cells != nil
}

// Len returns the number of actions in the path.
func (r *Result) Len() int {
	return len(r.Actions)
}

// OnPath reports whether c is one of the path cells.
// Complexity: O(len(Cells)).
func (r *Result) OnPath(c maze.Cell) bool {
	for _, pc := range r.Cells {
		if pc == c {
			return true
		}
	}
	return false
}
