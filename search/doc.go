// Package search solves mazes with uninformed graph search, returning the
// action sequence from start to goal and the number of states explored.
//
// What
//
//   - Solve(g, kind, opts...) runs generic graph search over a maze.Grid.
//   - kind picks the frontier discipline: frontier.DepthFirst removes from a
//     stack (LIFO, depth-first search), frontier.BreadthFirst from a queue
//     (FIFO, breadth-first search).
//   - The Result carries parallel Actions / Cells slices, the explored-count
//     and the explored cells in expansion order.
//   - WithContext bounds the run; the context is checked before every removal.
//   - Hooks observe the run: OnExpand (after each removal; may abort with an
//     error) and OnEnqueue (after each child is added).
//
// Algorithm
//
//  1. Put the root node (start cell, no parent) into a fresh frontier.
//  2. Stop with the context error once the context is done. If the frontier is empty, fail with ErrNoSolution.
//  3. Remove a node and count it. If it is the goal, rebuild the path.
//  4. Otherwise mark it explored and add every neighbour that is neither
//     explored nor already in the frontier, in up, down, left, right order.
//  5. Repeat from 2.
//
// Determinism
//
//	Neighbour order is fixed and no randomness is involved, so the same grid
//	and kind always yield the same Result.
//
// Guarantees
//
//   - BFS returns a shortest path (unit step cost); DFS does not.
//   - DFS and BFS agree on reachability.
//   - Explored never exceeds Height×Width; on success it is at least path
//     length + 1.
//
// Errors
//
//   - ErrGridNil, ErrOptionViolation, frontier.ErrInvalidAlgorithm for bad input.
//   - ErrNoSolution when the goal is unreachable (the partial Result is still returned).
//   - the context error (context.Canceled, context.DeadlineExceeded) unwrapped.
//   - any error returned by OnExpand, wrapped.
package search
