// Package maze turns a textual maze into an immutable wall grid with a
// single start and a single goal cell, and answers neighbour queries for
// search algorithms.
//
// What:
//
//   - Grid wraps a Height×Width wall matrix plus Start ('A') and Goal ('B').
//   - Parse / ParseReader / Load build a Grid from maze text.
//   - Neighbors lists the open, in-bounds cells reachable in one step,
//     always in the order up, down, left, right.
//
// Input format:
//
//	#####B#
//	##### #
//	####  #
//	#### ##
//	     ##
//	A######
//
//   - 'A' marks the start, 'B' the goal; exactly one of each is required.
//   - A space is an open cell; any other character is a wall.
//   - Rows may differ in length. Width is the longest row (in characters),
//     and positions past the end of a shorter row are open.
//
// Why:
//
//   - Search engines need a read-only state space: a Grid can be shared by
//     any number of concurrent solves.
//   - The fixed neighbour order makes depth-first and breadth-first results
//     reproducible run to run.
//
// Complexity:
//
//   - Parse:     O(H×W) time and memory.
//   - Neighbors: O(1).
//
// Errors:
//
//   - ErrMalformedMaze: the start or goal marker does not occur exactly once
//     (empty input therefore fails with it too).
package maze
