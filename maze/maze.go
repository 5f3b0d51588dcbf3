// Package maze provides utilities to treat a textual maze as a grid of open
// and blocked cells. It supports:
//
//   - Parsing from a string, an io.Reader or a file
//   - Bounds and wall checks
//   - Four-way neighbour expansion in a fixed order
//
// Positions beyond the end of a short row are open, not walls.
package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxLineBytes bounds a single maze row read by ParseReader.
const maxLineBytes = 1 << 20

// Parse builds a Grid from maze text.
// Returns ErrMalformedMaze if 'A' or 'B' does not occur exactly once.
// Algorithmic complexity: O(H×W) time and memory.
func Parse(text string) (*Grid, error) {
	return ParseReader(strings.NewReader(text))
}

// Load reads the maze file at path and parses it.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("maze: parse %q: %w", path, err)
	}

	return g, nil
}

// ParseReader reads maze text from r line by line (see splitLines for the
// recognised line boundaries; a final boundary does not add an empty row)
// and builds a Grid.
// Returns ErrMalformedMaze if 'A' or 'B' does not occur exactly once.
func ParseReader(r io.Reader) (*Grid, error) {
	// 1. Split into rows of runes so multi-byte wall glyphs count as one cell
	var rows [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	sc.Split(splitLines)
	for sc.Scan() {
		rows = append(rows, []rune(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read input: %w", err)
	}

	// 2. Validate markers before allocating anything else
	starts, goals := countMarkers(rows)
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d start points ('%c'), want exactly 1", ErrMalformedMaze, starts, StartMarker)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: found %d goal points ('%c'), want exactly 1", ErrMalformedMaze, goals, GoalMarker)
	}

	// 3. Dimensions: width is the longest row
	h, w := len(rows), 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	// 4. Record walls; cells past the end of a short row stay open
	g := &Grid{Height: h, Width: w, walls: make([][]bool, h)}
	for r := 0; r < h; r++ {
		g.walls[r] = make([]bool, w)
		for c, ch := range rows[r] {
			switch ch {
			case StartMarker:
				g.Start = Cell{Row: r, Col: c}
			case GoalMarker:
				g.Goal = Cell{Row: r, Col: c}
			case OpenMarker:
			default:
				g.walls[r][c] = true
			}
		}
	}

	return g, nil
}

// splitLines is a bufio.SplitFunc breaking on every Unicode line boundary:
// \n, \r, \r\n, \v, \f, \x1c-\x1e, U+0085, U+2028 and U+2029.
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i := 0; i < len(data); {
		// a boundary rune may straddle two reads
		if !atEOF && !utf8.FullRune(data[i:]) {
			return 0, nil, nil
		}
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if !atEOF {
				return 0, nil, nil
			}
			return i + 1, data[:i], nil
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return i + size, data[:i], nil
		}
		i += size
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}

	return 0, nil, nil
}

func countMarkers(rows [][]rune) (starts, goals int) {
	for _, row := range rows {
		for _, ch := range row {
			switch ch {
			case StartMarker:
				starts++
			case GoalMarker:
				goals++
			}
		}
	}
	return starts, goals
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// IsWall reports whether c is a wall. Out-of-bounds cells report false.
// Complexity: O(1).
func (g *Grid) IsWall(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.walls[c.Row][c.Col]
}

// Cells returns the total number of cells, Height×Width.
func (g *Grid) Cells() int {
	return g.Height * g.Width
}

// Neighbors returns the moves available from c: every in-bounds, non-wall
// cell one step up, down, left or right, in exactly that order.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Move {
	moves := make([]Move, 0, len(Directions))
	for _, d := range Directions {
		next := c.Step(d)
		if !g.InBounds(next) || g.walls[next.Row][next.Col] {
			continue
		}
		moves = append(moves, Move{Action: d, Cell: next})
	}
	return moves
}

// String renders the grid back to canonical maze text: '#' for walls,
// 'A' and 'B' for the markers and spaces for open cells, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := Cell{Row: r, Col: c}
			switch {
			case cell == g.Start:
				sb.WriteRune(StartMarker)
			case cell == g.Goal:
				sb.WriteRune(GoalMarker)
			case g.walls[r][c]:
				sb.WriteRune(WallMarker)
			default:
				sb.WriteRune(OpenMarker)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
