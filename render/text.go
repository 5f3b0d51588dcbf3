package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/mazesolver/maze"
	"github.com/katalvlaran/mazesolver/search"
)

// Glyphs used by Text.
const (
	WallGlyph = '█'
	PathGlyph = '*'
)

// Text prints g to w surrounded by blank lines: walls as '█', the markers
// as 'A' and 'B', path cells of res as '*' and everything else as a space.
// res may be nil.
func Text(w io.Writer, g *maze.Grid, res *search.Result) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('\n')
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := maze.Cell{Row: r, Col: c}
			switch {
			case g.IsWall(cell):
				bw.WriteRune(WallGlyph)
			case cell == g.Start:
				bw.WriteRune(maze.StartMarker)
			case cell == g.Goal:
				bw.WriteRune(maze.GoalMarker)
			case res != nil && res.OnPath(cell):
				bw.WriteRune(PathGlyph)
			default:
				bw.WriteRune(maze.OpenMarker)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
