package frontier

import "github.com/katalvlaran/mazesolver/maze"

// Queue is a first-in-first-out frontier.
type Queue struct {
	nodes []Node
}

var _ Frontier = (*Queue)(nil)

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add enqueues n at the back.
func (q *Queue) Add(n Node) {
	q.nodes = append(q.nodes, n)
}

// Remove dequeues the earliest added node.
func (q *Queue) Remove() (Node, error) {
	if q.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	n := q.nodes[0]
	q.nodes = q.nodes[1:]
	return n, nil
}

// ContainsState scans the queue for a node whose state equals state.
func (q *Queue) ContainsState(state maze.Cell) bool {
	for _, n := range q.nodes {
		if n.State == state {
			return true
		}
	}
	return false
}

// Empty reports whether the queue holds no nodes.
func (q *Queue) Empty() bool {
	return len(q.nodes) == 0
}

// Len returns the number of held nodes.
func (q *Queue) Len() int {
	return len(q.nodes)
}
