// Package maze defines the cell, direction and grid types together with
// the sentinel errors returned while parsing maze text.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrMalformedMaze indicates the start or goal marker count is not exactly one.
	ErrMalformedMaze = errors.New("maze: malformed maze")
)

// Markers recognised in maze text.
const (
	StartMarker = 'A'
	GoalMarker  = 'B'
	OpenMarker  = ' '
	// WallMarker is used by Grid.String; on input any unknown rune is a wall.
	WallMarker = '#'
)

// Direction labels the action that moves the agent from one cell to a neighbour.
type Direction string

// The four axis-aligned moves, listed in neighbour order.
const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every Direction in the order Neighbors reports them.
var Directions = []Direction{Up, Down, Left, Right}

// offset returns the (row, col) delta of d.
func (d Direction) offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Cell is a (row, column) position inside a Grid.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the cell one move away from c in direction d.
// The result may lie outside any grid; use Grid.InBounds to check.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.offset()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Move pairs a direction with the cell it leads to.
type Move struct {
	Action Direction
	Cell   Cell
}

// Grid is a parsed maze. It is immutable once built:
// Height and Width define the dimensions, Start and Goal are open cells,
// and walls[r][c] reports whether cell (r,c) is blocked.
type Grid struct {
	Height, Width int
	Start, Goal   Cell
	walls         [][]bool
}
