package maze

// NoRegion labels wall cells in the result of Regions.
const NoRegion = -1

// Regions labels every open cell with the index of its 4-connected region
// of open cells; walls are labelled NoRegion. Regions are numbered 0, 1, …
// in row-major order of their first cell. It returns the labels, indexed
// [row][col], and the number of regions.
//
// Time:   O(H·W).
// Memory: O(H·W) for the labels and the flood-fill queue.
func (g *Grid) Regions() ([][]int, int) {
	labels := make([][]int, g.Height)
	for r := range labels {
		labels[r] = make([]int, g.Width)
		for c := range labels[r] {
			labels[r][c] = NoRegion
		}
	}

	count := 0
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.walls[r][c] || labels[r][c] != NoRegion {
				continue
			}
			// flood fill the new region breadth-first
			queue := []Cell{{Row: r, Col: c}}
			labels[r][c] = count
			for qi := 0; qi < len(queue); qi++ {
				for _, m := range g.Neighbors(queue[qi]) {
					if labels[m.Cell.Row][m.Cell.Col] == NoRegion {
						labels[m.Cell.Row][m.Cell.Col] = count
						queue = append(queue, m.Cell)
					}
				}
			}
			count++
		}
	}
	return labels, count
}

// Connected reports whether b can be reached from a through open cells.
// Walls and out-of-bounds cells are never connected.
// Complexity: O(H·W).
func (g *Grid) Connected(a, b Cell) bool {
	if !g.InBounds(a) || !g.InBounds(b) || g.walls[a.Row][a.Col] || g.walls[b.Row][b.Col] {
		return false
	}
	labels, _ := g.Regions()
	return labels[a.Row][a.Col] == labels[b.Row][b.Col]
}
