// Package search runs uninformed graph search over a maze.Grid. The loop is
// the same for depth-first and breadth-first search; only the frontier
// discipline differs.
package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazesolver/frontier"
	"github.com/katalvlaran/mazesolver/maze"
)

// walker encapsulates mutable state of one search run.
type walker struct {
	ctx      context.Context
	grid     *maze.Grid
	opts     Options
	frontier frontier.Frontier
	explored map[maze.Cell]bool
	// arena holds every removed node; Node.Parent indexes into it.
	arena []frontier.Node
	res   *Result
}

// Solve searches g from g.Start to g.Goal using the frontier discipline
// selected by kind, applying any number of functional Options.
//
// Returns ErrGridNil for a nil grid, frontier.ErrInvalidAlgorithm for an
// unknown kind, ErrOptionViolation for bad options, the context error once
// the WithContext context is done, or any hook error.
// When the goal is unreachable, Solve returns ErrNoSolution together with a
// Result carrying the explored-count and explored cells but no path.
//
// Every call owns its frontier and explored set, so concurrent calls on the
// same Grid do not interfere.
//
// Complexity: each cell is expanded at most once, so at most H×W iterations;
// each iteration scans the frontier, O((H×W)²) worst case.
func Solve(g *maze.Grid, kind frontier.Kind, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f, err := frontier.New(kind)
	if err != nil {
		return nil, err
	}

	w := &walker{
		ctx:      o.Ctx,
		grid:     g,
		opts:     o,
		frontier: f,
		explored: make(map[maze.Cell]bool),
		res:      &Result{Algorithm: kind},
	}

	// Seed frontier with the start cell (no parent, no action)
	w.frontier.Add(frontier.Node{State: g.Start, Parent: frontier.NoParent})

	return w.loop()
}

// loop expands nodes until the goal is removed or the frontier is exhausted.
func (w *walker) loop() (*Result, error) {
	for {
		// 1. Respect cancellation
		select {
		case <-w.ctx.Done():
			return w.res, w.ctx.Err()
		default:
		}

		// 2. Exhausted frontier: the goal is unreachable
		if w.frontier.Empty() {
			return w.res, ErrNoSolution
		}

		// 3. Take the next node per discipline and count it
		n, err := w.frontier.Remove()
		if err != nil {
			return w.res, fmt.Errorf("search: internal invariant violated: %w", err)
		}
		w.res.Explored++
		idx := len(w.arena)
		w.arena = append(w.arena, n)

		if err := w.opts.OnExpand(n, w.res.Explored); err != nil {
			return w.res, fmt.Errorf("search: OnExpand error at %v: %w", n.State, err)
		}

		// 4. Goal test happens on removal, not on discovery
		if n.State == w.grid.Goal {
			w.res.Actions, w.res.Cells = reconstruct(w.arena, idx)
			return w.res, nil
		}

		// 5. Mark explored and push unseen neighbours
		w.explored[n.State] = true
		w.res.ExploredCells = append(w.res.ExploredCells, n.State)
		w.expand(n, idx)
	}
}

// expand adds a child for every neighbour of n that is neither explored nor
// already waiting in the frontier.
func (w *walker) expand(n frontier.Node, idx int) {
	for _, m := range w.grid.Neighbors(n.State) {
		if w.explored[m.Cell] || w.frontier.ContainsState(m.Cell) {
			continue
		}
		child := frontier.Node{State: m.Cell, Parent: idx, Action: m.Action}
		w.frontier.Add(child)
		w.opts.OnEnqueue(child)
	}
}
