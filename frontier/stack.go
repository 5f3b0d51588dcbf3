package frontier

import "github.com/katalvlaran/mazesolver/maze"

// Stack is a last-in-first-out frontier.
type Stack struct {
	nodes []Node
}

var _ Frontier = (*Stack)(nil)

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Add pushes n on top of the stack.
func (s *Stack) Add(n Node) {
	s.nodes = append(s.nodes, n)
}

// Remove pops the most recently added node.
func (s *Stack) Remove() (Node, error) {
	if s.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	last := len(s.nodes) - 1
	n := s.nodes[last]
	s.nodes = s.nodes[:last]
	return n, nil
}

// ContainsState scans the stack for a node whose state equals state.
func (s *Stack) ContainsState(state maze.Cell) bool {
	for _, n := range s.nodes {
		if n.State == state {
			return true
		}
	}
	return false
}

// Empty reports whether the stack holds no nodes.
func (s *Stack) Empty() bool {
	return len(s.nodes) == 0
}

// Len returns the number of held nodes.
func (s *Stack) Len() int {
	return len(s.nodes)
}
