// Package frontier holds the unexplored nodes of an uninformed graph search.
//
// What
//
//   - Frontier is the capability set shared by every discipline:
//     Add, Remove, ContainsState, Empty and Len.
//   - Stack removes the most recently added node (LIFO) and drives
//     depth-first search.
//   - Queue removes the earliest added node (FIFO) and drives
//     breadth-first search.
//   - Kind tags the discipline; New(kind) builds the matching frontier.
//
// Why
//
//   - The search loop is identical for DFS and BFS; only removal order
//     differs, so the discipline is the single point of variation.
//   - Stack and Queue are two independent implementations, not one type
//     overriding the other.
//
// Node ownership
//
//	A Node is held by the frontier until Remove hands it back. Its Parent is
//	an index into the caller's arena of already-expanded nodes (NoParent for
//	the root), so parent links form a tree without pointers.
//
// Complexity
//
//   - Add, Remove, Empty, Len: O(1) amortized.
//   - ContainsState:           O(n) linear scan over the held nodes.
//
// Errors
//
//   - ErrEmptyFrontier:    Remove called on an empty frontier; callers must
//     check Empty first, so this signals a broken invariant.
//   - ErrInvalidAlgorithm: unknown Kind or algorithm name.
package frontier
