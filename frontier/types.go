// Package frontier defines the Frontier capability, the search Node and the
// Kind tag selecting a removal discipline.
package frontier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazesolver/maze"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmptyFrontier is returned by Remove on an empty frontier.
	ErrEmptyFrontier = errors.New("frontier: empty frontier")

	// ErrInvalidAlgorithm is returned for an unrecognised Kind or algorithm name.
	ErrInvalidAlgorithm = errors.New("frontier: invalid algorithm")
)

// NoParent marks the root node of a search tree.
const NoParent = -1

// Node is one search state: the cell reached, the index of the node it was
// expanded from, and the action that led here. The root has Parent ==
// NoParent and an empty Action.
type Node struct {
	State  maze.Cell
	Parent int
	Action maze.Direction
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

// Frontier is the set of discovered but not yet expanded nodes.
// Callers must check Empty before Remove.
type Frontier interface {
	// Add appends n to the frontier.
	Add(n Node)
	// Remove evicts and returns the next node per the discipline,
	// or ErrEmptyFrontier.
	Remove() (Node, error)
	// ContainsState reports whether any held node has the given state.
	ContainsState(state maze.Cell) bool
	// Empty reports whether no nodes are held.
	Empty() bool
	// Len returns the number of held nodes.
	Len() int
}

// Kind selects a frontier discipline.
type Kind string

const (
	// DepthFirst uses a Stack (LIFO).
	DepthFirst Kind = "dfs"
	// BreadthFirst uses a Queue (FIFO).
	BreadthFirst Kind = "bfs"
)

// Kinds lists the supported disciplines in their default run order.
var Kinds = []Kind{DepthFirst, BreadthFirst}

// String returns the short algorithm name.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is a supported discipline.
func (k Kind) Valid() bool {
	return k == DepthFirst || k == BreadthFirst
}

// ParseKind maps an algorithm name to its Kind. Accepted names, case
// insensitive: "dfs", "depth-first", "bfs", "breadth-first".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	}
	return "", fmt.Errorf("%w: %q (choose dfs or bfs)", ErrInvalidAlgorithm, name)
}

// New returns an empty frontier for kind.
func New(kind Kind) (Frontier, error) {
	switch kind {
	case DepthFirst:
		return NewStack(), nil
	case BreadthFirst:
		return NewQueue(), nil
	}
	return nil, fmt.Errorf("%w: %q (choose dfs or bfs)", ErrInvalidAlgorithm, string(kind))
}
