package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/katalvlaran/mazesolver/maze"
	"github.com/katalvlaran/mazesolver/search"
)

// Palette used by Image.
var (
	Background = color.RGBA{A: 255}
	OpenColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	WallColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	StartColor = color.RGBA{R: 255, A: 255}
	GoalColor  = color.RGBA{G: 171, B: 28, A: 255}
	PathColor  = color.RGBA{G: 128, A: 255}
	SeenColor  = color.RGBA{R: 255, G: 165, A: 255}
)

// Options controls rasterisation.
type Options struct {
	// CellSize is the side of one cell in pixels.
	CellSize int
	// CellBorder is the inset of each cell square, in pixels.
	CellBorder int
	// ShowSolution paints the path cells.
	ShowSolution bool
	// ShowExplored paints explored cells that are not on the path.
	ShowExplored bool
}

// DefaultOptions returns 50 px cells with a 2 px border, solution shown.
func DefaultOptions() Options {
	return Options{
		CellSize:     50,
		CellBorder:   2,
		ShowSolution: true,
		ShowExplored: false,
	}
}

func (o Options) validate() error {
	if o.CellSize <= 0 {
		return fmt.Errorf("render: cell size must be positive (%d)", o.CellSize)
	}
	if o.CellBorder < 0 || 2*o.CellBorder >= o.CellSize {
		return fmt.Errorf("render: cell border %d does not fit a %d px cell", o.CellBorder, o.CellSize)
	}
	return nil
}

// Image rasterises g. res may be nil (nothing but walls and markers drawn).
// The image is Width×CellSize pixels wide and Height×CellSize pixels tall.
func Image(g *maze.Grid, res *search.Result, opts Options) (*image.RGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width*opts.CellSize, g.Height*opts.CellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	onPath := make(map[maze.Cell]bool)
	seen := make(map[maze.Cell]bool)
	if res != nil {
		if opts.ShowSolution {
			for _, c := range res.Cells {
				onPath[c] = true
			}
		}
		if opts.ShowExplored {
			for _, c := range res.ExploredCells {
				seen[c] = true
			}
		}
	}

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := maze.Cell{Row: r, Col: c}
			fill := cellColor(g, cell, onPath, seen)
			x0, y0 := c*opts.CellSize+opts.CellBorder, r*opts.CellSize+opts.CellBorder
			x1, y1 := (c+1)*opts.CellSize-opts.CellBorder, (r+1)*opts.CellSize-opts.CellBorder
			// corners are inclusive
			draw.Draw(img, image.Rect(x0, y0, x1+1, y1+1), image.NewUniform(fill), image.Point{}, draw.Src)
		}
	}

	return img, nil
}

// cellColor picks the fill for one cell; the path wins over explored.
func cellColor(g *maze.Grid, c maze.Cell, onPath, seen map[maze.Cell]bool) color.RGBA {
	switch {
	case g.IsWall(c):
		return WallColor
	case c == g.Start:
		return StartColor
	case c == g.Goal:
		return GoalColor
	case onPath[c]:
		return PathColor
	case seen[c]:
		return SeenColor
	}
	return OpenColor
}

// PNG encodes the rendered maze as PNG into w.
func PNG(w io.Writer, g *maze.Grid, res *search.Result, opts Options) error {
	img, err := Image(g, res, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// EncodePNG returns the PNG bytes of the rendered maze.
func EncodePNG(g *maze.Grid, res *search.Result, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := PNG(&buf, g, res, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders the maze to a PNG file at path and returns the bytes
// written, so callers can also embed them.
func WriteFile(path string, g *maze.Grid, res *search.Result, opts Options) ([]byte, error) {
	data, err := EncodePNG(g, res, opts)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("render: write %q: %w", path, err)
	}
	return data, nil
}
