// Package mazesolver solves text mazes with uninformed search: depth-first
// search over a LIFO stack and breadth-first search over a FIFO queue.
//
// What's inside:
//
//	maze/             the Grid model: parsing, bounds, walls, ordered neighbours, regions
//	frontier/         the Frontier capability with Stack and Queue variants
//	search/           Solve (the search loop) and path reconstruction
//	render/           PNG, data-URI and text renderings of a grid and its solution
//	report/           per maze × algorithm results as table, JSON, YAML or summary
//	metrics/          Prometheus counters and histograms, textfile export
//	config/           .env, MAZESOLVER_* variables and YAML run files
//	logic/            propositional sentences, truth-table and SAT entailment
//	internal/runner/  solves many mazes with many algorithms concurrently
//	cmd/              the mazesolver CLI (solve, entail)
//
// Maze format:
//
//	#####B#
//	##### #
//	####  #
//	#### ##
//	     ##
//	A######
//
// 'A' is the start, 'B' the goal, ' ' open, anything else a wall. Moves go
// up, down, left or right, one cell at a time.
//
// Quick start:
//
//	g, _ := maze.Load("maze1.txt")
//	res, err := search.Solve(g, frontier.BreadthFirst)
//	if errors.Is(err, search.ErrNoSolution) { ... }
//	fmt.Println(res.Explored, res.Len()) // 11 10
//
// CLI:
//
//	go run ./cmd solve --format table --out-dir out maze/testdata/*.txt
//	go run ./cmd entail --query rain
package mazesolver
