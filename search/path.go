package search

import (
	"github.com/katalvlaran/mazesolver/frontier"
	"github.com/katalvlaran/mazesolver/maze"
)

// reconstruct walks parent indices from arena[goal] back to the root and
// returns the actions taken and the cells visited, in start→goal order.
// The root's own state is excluded; the goal is included.
// Complexity: O(path length).
func reconstruct(arena []frontier.Node, goal int) ([]maze.Direction, []maze.Cell) {
	actions := make([]maze.Direction, 0)
	cells := make([]maze.Cell, 0)
	// build reversed path
	for i := goal; arena[i].Parent != frontier.NoParent; i = arena[i].Parent {
		actions = append(actions, arena[i].Action)
		cells = append(cells, arena[i].State)
	}
	// reverse to get start → goal
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
		cells[i], cells[j] = cells[j], cells[i]
	}

	return actions, cells
}
