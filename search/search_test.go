package search_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/frontier"
	"github.com/katalvlaran/mazesolver/maze"
	"github.com/katalvlaran/mazesolver/search"
)

// fixtures are maze texts shared across property tests.
var fixtures = map[string]string{
	"corridor": "AB \n###\n   \n",
	"open":     "A    \n     \n    B\n",
	"snake":    "B    \n     \nA    \n",
	"short":    "A #\n# #\n#\n# B",
	"walled":   "A  #\n   #\n####\n  B",
}

// mustParse parses text or fails the test.
func mustParse(t testing.TB, text string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(text)
	require.NoError(t, err)
	return g
}

// mustLoad loads one of the shared maze fixtures.
func mustLoad(t testing.TB, name string) *maze.Grid {
	t.Helper()
	g, err := maze.Load(filepath.Join("..", "maze", "testdata", name))
	require.NoError(t, err)
	return g
}

// cells builds a []maze.Cell from (row, col) pairs.
func cells(pairs ...[2]int) []maze.Cell {
	out := make([]maze.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = maze.Cell{Row: p[0], Col: p[1]}
	}
	return out
}

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

// TestSolve_Errors verifies that invalid inputs and options are rejected.
func TestSolve_Errors(t *testing.T) {
	g := mustParse(t, fixtures["corridor"])

	_, err := search.Solve(nil, frontier.DepthFirst)
	assert.ErrorIs(t, err, search.ErrGridNil)

	_, err = search.Solve(g, frontier.Kind("greedy"))
	assert.ErrorIs(t, err, frontier.ErrInvalidAlgorithm)

	_, err = search.Solve(g, frontier.BreadthFirst, search.WithOnExpand(nil))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Solve(g, frontier.BreadthFirst, search.WithOnEnqueue(nil))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Solve(g, frontier.BreadthFirst, search.WithContext(nil))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

//----------------------------------------------------------------------------//
// Known solutions
//----------------------------------------------------------------------------//

// TestSolve_SingleStep covers the adjacent start/goal corridor for both kinds.
func TestSolve_SingleStep(t *testing.T) {
	g := mustParse(t, fixtures["corridor"])
	for _, kind := range frontier.Kinds {
		res, err := search.Solve(g, kind)
		require.NoError(t, err, kind)
		assert.Equal(t, []maze.Direction{maze.Right}, res.Actions, kind)
		assert.Equal(t, []maze.Cell{g.Goal}, res.Cells, kind)
		assert.Equal(t, 2, res.Explored, kind)
		assert.Equal(t, kind, res.Algorithm)
	}
}

// TestSolve_Maze1 checks the single-corridor fixture, where both kinds
// follow the same path.
func TestSolve_Maze1(t *testing.T) {
	g := mustLoad(t, "maze1.txt")
	wantActions := []maze.Direction{
		maze.Up, maze.Right, maze.Right, maze.Right, maze.Right,
		maze.Up, maze.Up, maze.Right, maze.Up, maze.Up,
	}
	wantCells := cells(
		[2]int{4, 0}, [2]int{4, 1}, [2]int{4, 2}, [2]int{4, 3}, [2]int{4, 4},
		[2]int{3, 4}, [2]int{2, 4}, [2]int{2, 5}, [2]int{1, 5}, [2]int{0, 5},
	)
	for _, kind := range frontier.Kinds {
		res, err := search.Solve(g, kind)
		require.NoError(t, err, kind)
		assert.Equal(t, wantActions, res.Actions, kind)
		assert.Equal(t, wantCells, res.Cells, kind)
		assert.Equal(t, 11, res.Explored, kind)
	}
}

// TestSolve_KnownCounts pins explored-count and path length per kind.
func TestSolve_KnownCounts(t *testing.T) {
	cases := []struct {
		name     string
		grid     *maze.Grid
		kind     frontier.Kind
		explored int
		length   int
	}{
		{"maze2/dfs", mustLoad(t, "maze2.txt"), frontier.DepthFirst, 194, 30},
		{"maze2/bfs", mustLoad(t, "maze2.txt"), frontier.BreadthFirst, 77, 30},
		{"open/dfs", mustParse(t, fixtures["open"]), frontier.DepthFirst, 7, 6},
		{"open/bfs", mustParse(t, fixtures["open"]), frontier.BreadthFirst, 15, 6},
		{"snake/dfs", mustParse(t, fixtures["snake"]), frontier.DepthFirst, 11, 10},
		{"snake/bfs", mustParse(t, fixtures["snake"]), frontier.BreadthFirst, 4, 2},
		{"short/dfs", mustParse(t, fixtures["short"]), frontier.DepthFirst, 6, 5},
		{"short/bfs", mustParse(t, fixtures["short"]), frontier.BreadthFirst, 7, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.Solve(tc.grid, tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.explored, res.Explored)
			assert.Equal(t, tc.length, res.Len())
		})
	}
}

// TestSolve_ShortRowPath checks that cells past a short row's end are usable.
func TestSolve_ShortRowPath(t *testing.T) {
	g := mustParse(t, fixtures["short"])

	res, err := search.Solve(g, frontier.DepthFirst)
	require.NoError(t, err)
	assert.Equal(t, []maze.Direction{maze.Right, maze.Down, maze.Down, maze.Right, maze.Down}, res.Actions)

	res, err = search.Solve(g, frontier.BreadthFirst)
	require.NoError(t, err)
	assert.Equal(t, []maze.Direction{maze.Right, maze.Down, maze.Down, maze.Down, maze.Right}, res.Actions)
}

// TestSolve_ExploredCells records expansion order and never includes the goal.
func TestSolve_ExploredCells(t *testing.T) {
	g := mustParse(t, fixtures["open"])
	res, err := search.Solve(g, frontier.DepthFirst)
	require.NoError(t, err)

	want := cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}, [2]int{1, 4})
	assert.Equal(t, want, res.ExploredCells)
	assert.NotContains(t, res.ExploredCells, g.Goal)
	assert.Equal(t, res.Explored, len(res.ExploredCells)+1)
}

//----------------------------------------------------------------------------//
// Unreachable goal
//----------------------------------------------------------------------------//

// TestSolve_NoSolution verifies both kinds fail on a sealed-off goal and
// still report diagnostics.
func TestSolve_NoSolution(t *testing.T) {
	for _, g := range []*maze.Grid{mustParse(t, fixtures["walled"]), mustLoad(t, "maze3.txt")} {
		for _, kind := range frontier.Kinds {
			res, err := search.Solve(g, kind)
			require.ErrorIs(t, err, search.ErrNoSolution, kind)
			require.NotNil(t, res)
			assert.False(t, res.Solved())
			assert.Nil(t, res.Actions)
			assert.Equal(t, 6, res.Explored, kind)
			assert.Len(t, res.ExploredCells, 6)
		}
	}
}

//----------------------------------------------------------------------------//
// Properties across fixtures
//----------------------------------------------------------------------------//

// allGrids returns every inline and file fixture.
func allGrids(t *testing.T) map[string]*maze.Grid {
	grids := make(map[string]*maze.Grid, len(fixtures)+3)
	for name, text := range fixtures {
		grids[name] = mustParse(t, text)
	}
	for _, f := range []string{"maze1.txt", "maze2.txt", "maze3.txt", "short.txt"} {
		grids[f] = mustLoad(t, f)
	}
	return grids
}

// TestSolve_Properties checks reachability agreement, BFS optimality,
// explored-count bounds and path validity on every fixture.
func TestSolve_Properties(t *testing.T) {
	for name, g := range allGrids(t) {
		t.Run(name, func(t *testing.T) {
			dfs, dfsErr := search.Solve(g, frontier.DepthFirst)
			bfs, bfsErr := search.Solve(g, frontier.BreadthFirst)

			require.Equal(t, errors.Is(dfsErr, search.ErrNoSolution), errors.Is(bfsErr, search.ErrNoSolution),
				"DFS and BFS disagree on reachability")
			for _, res := range []*search.Result{dfs, bfs} {
				assert.LessOrEqual(t, res.Explored, g.Cells())
			}
			if dfsErr != nil {
				return
			}
			require.NoError(t, bfsErr)

			assert.LessOrEqual(t, bfs.Len(), dfs.Len(), "BFS must find a shortest path")
			for _, res := range []*search.Result{dfs, bfs} {
				assert.GreaterOrEqual(t, res.Explored, res.Len()+1)
				require.Len(t, res.Cells, len(res.Actions))
				assert.Equal(t, g.Goal, res.Cells[len(res.Cells)-1])

				// every step follows its action and lands on an open cell
				prev := g.Start
				for i, a := range res.Actions {
					next := prev.Step(a)
					require.Equal(t, next, res.Cells[i])
					require.True(t, g.InBounds(next))
					require.False(t, g.IsWall(next))
					prev = next
				}
			}
		})
	}
}

// TestSolve_Deterministic re-runs each kind on a freshly parsed grid.
func TestSolve_Deterministic(t *testing.T) {
	for _, kind := range frontier.Kinds {
		first, err := search.Solve(mustLoad(t, "maze2.txt"), kind)
		require.NoError(t, err)
		second, err := search.Solve(mustLoad(t, "maze2.txt"), kind)
		require.NoError(t, err)
		assert.Equal(t, first, second, kind)
	}
}

// TestSolve_ConcurrentOnSharedGrid runs many solves on one grid in parallel.
func TestSolve_ConcurrentOnSharedGrid(t *testing.T) {
	g := mustLoad(t, "maze2.txt")
	want := map[frontier.Kind]int{frontier.DepthFirst: 194, frontier.BreadthFirst: 77}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		kind := frontier.Kinds[i%2]
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := search.Solve(g, kind)
			if err != nil {
				errs <- err
				return
			}
			if res.Explored != want[kind] {
				errs <- errors.New("explored-count changed under concurrency")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

//----------------------------------------------------------------------------//
// Hooks
//----------------------------------------------------------------------------//

// TestSolve_Hooks asserts hooks fire once per expansion and per enqueue.
func TestSolve_Hooks(t *testing.T) {
	g := mustLoad(t, "maze1.txt")

	var expanded []int
	enqueued := 0
	res, err := search.Solve(g, frontier.BreadthFirst,
		search.WithOnExpand(func(n frontier.Node, explored int) error {
			expanded = append(expanded, explored)
			return nil
		}),
		search.WithOnEnqueue(func(n frontier.Node) {
			assert.False(t, n.IsRoot())
			enqueued++
		}),
	)
	require.NoError(t, err)
	require.Len(t, expanded, res.Explored)
	for i, n := range expanded {
		assert.Equal(t, i+1, n)
	}
	// every node but the root was enqueued through the hook
	assert.GreaterOrEqual(t, enqueued, res.Explored-1)
}

// TestSolve_HookAbort verifies an OnExpand error stops the search.
func TestSolve_HookAbort(t *testing.T) {
	g := mustLoad(t, "maze2.txt")
	stop := errors.New("budget exhausted")

	res, err := search.Solve(g, frontier.DepthFirst,
		search.WithOnExpand(func(_ frontier.Node, explored int) error {
			if explored == 3 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, res.Explored)
	assert.False(t, res.Solved())
}

// TestSolve_ContextCanceled verifies a done context stops the search before
// the next expansion and keeps the partial counts.
func TestSolve_ContextCanceled(t *testing.T) {
	g := mustLoad(t, "maze2.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := search.Solve(g, frontier.BreadthFirst, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Explored)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	res, err = search.Solve(g, frontier.DepthFirst,
		search.WithContext(ctx),
		search.WithOnExpand(func(_ frontier.Node, explored int) error {
			if explored == 3 {
				cancel()
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, res.Explored)
	assert.False(t, res.Solved())
}
